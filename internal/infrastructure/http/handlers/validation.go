package handlers

import (
	"encoding/json"
	"sort"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/account"
	domerrors "github.com/Chetan-Warad-CSYE6225/webapp/internal/domain/errors"
)

// updatableFields is the allow-list for PUT /v1/user/self bodies.
var updatableFields = map[string]struct{}{
	"first_name": {},
	"last_name":  {},
	"password":   {},
}

// decodeUpdateInput whitelist-filters a raw body into a typed partial
// update. Any key outside the allow-list yields a ForbiddenFieldsError
// naming the offending keys; no fields are applied in that case.
func decodeUpdateInput(raw map[string]json.RawMessage) (account.UpdateUserInput, error) {
	var in account.UpdateUserInput
	var forbidden []string
	for key := range raw {
		if _, ok := updatableFields[key]; !ok {
			forbidden = append(forbidden, key)
		}
	}
	if len(forbidden) > 0 {
		sort.Strings(forbidden)
		return in, &domerrors.ForbiddenFieldsError{Fields: forbidden}
	}
	for key, val := range raw {
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return in, domerrors.ErrValidation
		}
		v := s
		switch key {
		case "first_name":
			in.FirstName = &v
		case "last_name":
			in.LastName = &v
		case "password":
			in.Password = &v
		}
	}
	return in, nil
}
