package response

import (
	"errors"
	"net/http"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/adjustment"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/attendance"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/auth"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/contract"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/leave"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/notification"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/payroll"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/schedule"
	"github.com/chamcong-vn/attendance-backend-go/internal/domain/user"
	"github.com/chamcong-vn/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Contracts
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")

	// Attendance
	case errors.Is(err, attendance.ErrShiftAlreadyOpen):
		Conflict(w, "An open shift already exists; check out first")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Adjustments
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")

	// Payroll
	case errors.Is(err, payroll.ErrSalarySettingsNotFound):
		Conflict(w, "Salary settings are not configured; payroll cannot run")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Schedule
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees and cannot be deleted")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrAlreadyAssigned):
		Conflict(w, "Employee already has a shift on that date")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
