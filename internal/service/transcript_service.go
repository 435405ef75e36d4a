package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sms-api/internal/models"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
	"github.com/noah-isme/sms-api/pkg/export"
)

type renderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type studentLookup interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type studentEnrollmentLookup interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error)
}

// Transcript headers.
const (
	columnCourseID   = "Course ID"
	columnCourseName = "Course"
	columnGrade      = "Grade"
)

// Transcript is a rendered transcript document.
type Transcript struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TranscriptService renders a student's enrollments as CSV or PDF.
type TranscriptService struct {
	students    studentLookup
	enrollments studentEnrollmentLookup
	renderers   map[export.Format]renderer
	logger      *zap.Logger
	now         func() time.Time
}

// NewTranscriptService constructs the transcript service. institution is
// printed in PDF headers.
func NewTranscriptService(students studentLookup, enrollments studentEnrollmentLookup, institution string, logger *zap.Logger) *TranscriptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptService{
		students:    students,
		enrollments: enrollments,
		renderers: map[export.Format]renderer{
			export.FormatCSV: export.NewCSVExporter(),
			export.FormatPDF: export.NewPDFExporter(institution),
		},
		logger: logger,
		now:    time.Now,
	}
}

// Render builds the transcript for studentID in the requested format.
func (s *TranscriptService) Render(ctx context.Context, studentID, rawFormat string) (*Transcript, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, err
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	enrollments, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student enrollments")
	}

	data, err := s.renderers[format].Render(s.dataset(student, enrollments))
	if err != nil {
		s.logger.Error("render transcript", zap.String("student_id", studentID), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript")
	}
	return &Transcript{
		Filename:    fmt.Sprintf("transcript_%s.%s", student.ID, format.Extension()),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func (s *TranscriptService) dataset(student *models.Student, enrollments []models.Enrollment) export.Dataset {
	rows := make([]map[string]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		name := enrollment.CourseID
		if entry, ok := models.LookupCourse(enrollment.CourseID); ok {
			name = entry.CourseName
		}
		rows = append(rows, map[string]string{
			columnCourseID:   enrollment.CourseID,
			columnCourseName: name,
			columnGrade:      enrollment.Grade.String(),
		})
	}
	return export.Dataset{
		Title: "Academic Transcript",
		Details: []export.Detail{
			{Label: "Student", Value: student.Name},
			{Label: "Student ID", Value: student.ID},
			{Label: "Major", Value: string(student.Major)},
			{Label: "Generated", Value: s.now().UTC().Format(time.RFC1123)},
		},
		Headers: []string{columnCourseID, columnCourseName, columnGrade},
		Rows:    rows,
	}
}
