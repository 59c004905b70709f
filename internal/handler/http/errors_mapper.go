package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/confidential-vault/internal/service"
	"github.com/MKhiriev/confidential-vault/internal/utils"
	"github.com/MKhiriev/confidential-vault/internal/validators"
	"github.com/MKhiriev/confidential-vault/models"
)

// errorStatuses is checked in order: specific errors come before the kinds
// they wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrIntentReplayed, http.StatusConflict},
	{service.ErrDuplicateTransaction, http.StatusConflict},
	{service.ErrTooManyPendingTransactions, http.StatusServiceUnavailable},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrAirdropDisabled, http.StatusNotFound},
	{ErrInvalidJSON, http.StatusBadRequest},

	{models.ErrStructuralDecode, http.StatusBadRequest},
	{models.ErrInvalidArgument, http.StatusBadRequest},
	{models.ErrAuthorization, http.StatusForbidden},
	{models.ErrInsufficientFunds, http.StatusUnprocessableEntity},
	{models.ErrArithmeticOverflow, http.StatusUnprocessableEntity},
	{models.ErrExternalService, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError hides the text of unclassified errors from clients.
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		err = errors.New(http.StatusText(status))
	}
	utils.WriteError(w, r, err, status)
}
