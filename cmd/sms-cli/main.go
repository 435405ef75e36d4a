package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/internal/registry"
)

const (
	actionExit = 11

	banner = `Student Management System
********************************************
1.  Add student
2.  Add instructor
3.  Add course
4.  Add course instructor
5.  Enroll student in a course
6.  Assign grade to student for a course
7.  Find student
8.  Find course
9.  Find students enrolled in a course
10. Find courses a student is enrolled in
11. End program
********************************************`
	prompt = "What action do you want to perform?"
)

type action struct {
	title string
	run   func() (interface{}, error)
}

// demo drives a registry with one seeded student, instructor and course.
type demo struct {
	reg        *registry.Registry
	student    models.Student
	instructor models.Instructor
	course     *models.Course
}

func newDemo() (*demo, error) {
	course, err := models.NewCourseFromCatalog("INTRO_TO_PROGRAMMING")
	if err != nil {
		return nil, err
	}
	return &demo{
		reg:        registry.New(),
		student:    models.NewStudent("", "Gabriel", "Okundaye", models.MajorComputerScience),
		instructor: models.NewInstructor("", "Guido", "Rossum", models.DepartmentComputerScience),
		course:     course,
	}, nil
}

func (d *demo) actions() map[int]action {
	return map[int]action{
		1: {"Add student", func() (interface{}, error) {
			if err := d.reg.AddStudent(d.student); err != nil {
				return nil, err
			}
			return d.findStudent()
		}},
		2: {"Add instructor", func() (interface{}, error) {
			if err := d.reg.AddInstructor(d.instructor); err != nil {
				return nil, err
			}
			instructor, _ := d.reg.FindInstructor(d.instructor.ID)
			return instructor, nil
		}},
		3: {"Add course", func() (interface{}, error) {
			if err := d.reg.AddCourse(d.course.Clone()); err != nil {
				return nil, err
			}
			return d.findCourse()
		}},
		4: {"Add course instructor", func() (interface{}, error) {
			return d.reg.AssignInstructor(d.instructor.ID, d.course.CourseID)
		}},
		5: {"Enroll student in a course", func() (interface{}, error) {
			return d.reg.EnrollStudent(d.student.ID, d.course.CourseID)
		}},
		6: {"Assign grade to student for a course", func() (interface{}, error) {
			return d.reg.GradeStudent(d.student.ID, d.course.CourseID, models.GradeAPlus)
		}},
		7: {"Find student", func() (interface{}, error) { return d.findStudent() }},
		8: {"Find course", func() (interface{}, error) { return d.findCourse() }},
		9: {"Find students enrolled in a course", func() (interface{}, error) {
			return d.reg.FindCourseEnrolledStudents(d.course.CourseID)
		}},
		10: {"Find courses a student is enrolled in", func() (interface{}, error) {
			return d.reg.FindEnrolledStudentCourses(d.student.ID)
		}},
	}
}

func (d *demo) findStudent() (interface{}, error) {
	student, ok := d.reg.FindStudent(d.student.ID)
	if !ok {
		return nil, fmt.Errorf("student with ID %s does not exist", d.student.ID)
	}
	return student, nil
}

func (d *demo) findCourse() (interface{}, error) {
	course, ok := d.reg.FindCourse(d.course.CourseID)
	if !ok {
		return nil, fmt.Errorf("course with ID %s does not exist", d.course.CourseID)
	}
	return course, nil
}

// run reads menu choices from in until the exit action or EOF.
func (d *demo) run(in io.Reader, out io.Writer) error {
	actions := d.actions()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, banner)
	for {
		fmt.Fprintln(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || choice < 1 || choice > actionExit {
			fmt.Fprintf(out, "\nChoose an action from 1 through %d. Choose %d to end program.\n\n", actionExit, actionExit)
			continue
		}
		if choice == actionExit {
			fmt.Fprintln(out, "Exiting application...")
			return nil
		}

		selected := actions[choice]
		fmt.Fprintf(out, "Action: %s\n", selected.title)
		result, err := selected.run()
		if err != nil {
			fmt.Fprintf(out, "\nOops, an error occurred: %v\n\n", err)
			continue
		}
		rendered, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n\n", rendered)
	}
}

func main() {
	d, err := newDemo()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := d.run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
