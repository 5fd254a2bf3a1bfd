package attendance_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"employee-portal/internal/domain"
	"employee-portal/internal/service/attendance"
	"employee-portal/tests/mocks"
)

func TestAttendanceService_ClockIn(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockAttRepo := new(mocks.AttendanceRepository)
		mockSchedRepo := new(mocks.ScheduleRepository)
		svc := attendance.NewService(mockAttRepo, mockSchedRepo)

		mockSchedRepo.On("HasWorkday", ctx, employeeID, mock.Anything).Return(true, nil).Once()
		mockAttRepo.On("GetForDate", ctx, employeeID, mock.Anything).
			Return(nil, domain.NewNotFoundError("attendance")).Once()
		mockAttRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Attendance) bool {
			return a.EmployeeID == employeeID && a.ClockOut == nil
		})).Return(nil).Once()

		att, err := svc.ClockIn(ctx, employeeID)

		assert.NoError(t, err)
		assert.NotNil(t, att)
		mockAttRepo.AssertExpectations(t)
	})

	t.Run("No Scheduled Workday", func(t *testing.T) {
		mockAttRepo := new(mocks.AttendanceRepository)
		mockSchedRepo := new(mocks.ScheduleRepository)
		svc := attendance.NewService(mockAttRepo, mockSchedRepo)

		mockSchedRepo.On("HasWorkday", ctx, employeeID, mock.Anything).Return(false, nil).Once()

		att, err := svc.ClockIn(ctx, employeeID)

		assert.Nil(t, att)
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
		mockAttRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Double Clock In", func(t *testing.T) {
		mockAttRepo := new(mocks.AttendanceRepository)
		mockSchedRepo := new(mocks.ScheduleRepository)
		svc := attendance.NewService(mockAttRepo, mockSchedRepo)

		mockSchedRepo.On("HasWorkday", ctx, employeeID, mock.Anything).Return(true, nil).Once()
		mockAttRepo.On("GetForDate", ctx, employeeID, mock.Anything).
			Return(&domain.Attendance{ID: uuid.New(), EmployeeID: employeeID}, nil).Once()

		att, err := svc.ClockIn(ctx, employeeID)

		assert.Nil(t, att)
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})
}

func TestAttendanceService_ClockOut(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	attendanceID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockAttRepo := new(mocks.AttendanceRepository)
		mockSchedRepo := new(mocks.ScheduleRepository)
		svc := attendance.NewService(mockAttRepo, mockSchedRepo)

		mockAttRepo.On("GetForDate", ctx, employeeID, mock.Anything).
			Return(&domain.Attendance{ID: attendanceID, EmployeeID: employeeID}, nil).Once()
		mockAttRepo.On("SetClockOut", ctx, attendanceID, mock.Anything).Return(nil).Once()

		att, err := svc.ClockOut(ctx, employeeID)

		assert.NoError(t, err)
		assert.NotNil(t, att.ClockOut)
	})

	t.Run("Not Clocked In", func(t *testing.T) {
		mockAttRepo := new(mocks.AttendanceRepository)
		mockSchedRepo := new(mocks.ScheduleRepository)
		svc := attendance.NewService(mockAttRepo, mockSchedRepo)

		mockAttRepo.On("GetForDate", ctx, employeeID, mock.Anything).
			Return(nil, domain.NewNotFoundError("attendance")).Once()

		att, err := svc.ClockOut(ctx, employeeID)

		assert.Nil(t, att)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}
