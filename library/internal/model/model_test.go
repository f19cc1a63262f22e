package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

func TestLastPage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		total, size, want int
	}{
		{total: 0, size: 5, want: 0},
		{total: 1, size: 5, want: 1},
		{total: 5, size: 5, want: 1},
		{total: 12, size: 5, want: 3},
		{total: 3, size: 0, want: 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, model.LastPage(tt.total, tt.size), "%d/%d", tt.total, tt.size)
	}
}

func TestYearMonth(t *testing.T) {
	t.Parallel()
	require.Equal(t, "1965-08", model.YearMonth(1965, 8))
	require.Equal(t, "2024-12", model.YearMonth(2024, 12))
}

func TestBookRequest(t *testing.T) {
	t.Parallel()
	book := model.BookRequest{ISBN: 1, Title: "t", AuthorID: 2, PublisherID: 3, PublicationYear: 2000, PublicationMonth: 4}.Book()
	require.Equal(t, model.StatusActive, book.Status)
	require.False(t, book.Status.IsDeleted())
	require.Equal(t, int64(2), book.AuthorID)
}
