package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Go Engineer", "senior-go-engineer"},
		{"  Lead DevOps (Remote)  ", "lead-devops-remote"},
		{"C++ / Rust Developer!!", "c-rust-developer"},
		{"Data Analyst & BI, 2024", "data-analyst-bi-2024"},
		{"UPPER lower MiXeD", "upper-lower-mixed"},
		{"a---b", "a-b"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.title), "title %q", tc.title)
	}
}

func TestTransitionMatrix(t *testing.T) {
	assert.True(t, transitionAllowed(StatusDraft, StatusPublished))
	assert.True(t, transitionAllowed(StatusDraft, StatusCanceled))
	assert.True(t, transitionAllowed(StatusPublished, StatusFilled))
	assert.True(t, transitionAllowed(StatusPublished, StatusExpired))
	assert.True(t, transitionAllowed(StatusExpired, StatusPublished))

	assert.False(t, transitionAllowed(StatusDraft, StatusFilled))
	assert.False(t, transitionAllowed(StatusFilled, StatusPublished))
	assert.False(t, transitionAllowed(StatusCanceled, StatusPublished))
}
