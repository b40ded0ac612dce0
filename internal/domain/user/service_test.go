// internal/domain/user/service_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateProfileRequestChanges_AllFields(t *testing.T) {
	req := UpdateProfileRequest{
		FullName:     strPtr("Olena K"),
		Phone:        strPtr("+38 099 123 45 67"),
		City:         strPtr("Lviv"),
		Address:      strPtr("Shevchenka 10"),
		NPDepartment: strPtr("Dept 42"),
	}

	changes := req.Changes()

	assert.Equal(t, map[string]interface{}{
		"full_name":     "Olena K",
		"phone":         "+38 099 123 45 67",
		"city":          "Lviv",
		"address":       "Shevchenka 10",
		"np_department": "Dept 42",
	}, changes)
}

func TestUpdateProfileRequestChanges_DropsUnsetFields(t *testing.T) {
	req := UpdateProfileRequest{
		City: strPtr("Odesa"),
	}

	changes := req.Changes()

	assert.Equal(t, map[string]interface{}{"city": "Odesa"}, changes)
}

func TestUpdateProfileRequestChanges_EmptyStringNeverClears(t *testing.T) {
	req := UpdateProfileRequest{
		FullName: strPtr(""),
		Phone:    strPtr("+38 050 111 22 33"),
	}

	changes := req.Changes()

	assert.NotContains(t, changes, "full_name")
	assert.Equal(t, "+38 050 111 22 33", changes["phone"])
}

func TestUpdateProfileRequestChanges_EmptyRequest(t *testing.T) {
	req := UpdateProfileRequest{}

	assert.Empty(t, req.Changes())
}
