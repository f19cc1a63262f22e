package validate_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-lending/pkg/validate"
)

func TestField(t *testing.T) {
	t.Parallel()
	type req struct {
		BookID int64 `json:"book_id" validate:"required,gt=0"`
		Month  int   `json:"publication_month,omitempty" validate:"min=1,max=12"`
	}
	v := validate.NewCustomValidator()

	tests := []struct {
		name string
		in   req
		want string
	}{
		{name: "missing id", in: req{Month: 1}, want: "book_id"},
		{name: "month out of range", in: req{BookID: 1, Month: 13}, want: "publication_month"},
	}
	for _, tt := range tests {
		err := v.Validate(tt.in)
		require.Error(t, err, tt.name)
		require.Equal(t, tt.want, validate.Field(err), tt.name)
	}

	require.NoError(t, v.Validate(req{BookID: 1, Month: 12}))
	require.Equal(t, "body", validate.Field(errors.New("unexpected EOF")))
}
