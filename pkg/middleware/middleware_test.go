package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	md "github.com/Astemirdum/library-lending/pkg/middleware"
)

func TestSessionToken(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{
			name:  "bearer header",
			setup: func(r *http.Request) { r.Header.Set(md.AuthorizationHeader, "Bearer abc") },
			want:  "abc",
		},
		{
			name:  "cookie",
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: md.SessionCookie, Value: "xyz"}) },
			want:  "xyz",
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set(md.AuthorizationHeader, "Bearer abc")
				r.AddCookie(&http.Cookie{Name: md.SessionCookie, Value: "xyz"})
			},
			want: "abc",
		},
		{
			name:  "basic auth ignored",
			setup: func(r *http.Request) { r.Header.Set(md.AuthorizationHeader, "Basic Zm9vOmJhcg==") },
			want:  "",
		},
		{
			name:  "none",
			setup: func(r *http.Request) {},
			want:  "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			tt.setup(r)
			require.Equal(t, tt.want, md.SessionToken(r))
		})
	}
}
