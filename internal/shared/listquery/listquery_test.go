package listquery_test

import (
	"net/http/httptest"
	"testing"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, rawQuery string) listquery.Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return listquery.Parse(c, "created_at")
}

func TestParse_Defaults(t *testing.T) {
	p := paramsFor(t, "")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, 0, p.Offset())
}

func TestParse_Explicit(t *testing.T) {
	p := paramsFor(t, "page=3&limit=25&search=engineer&sort_by=title&sort_order=asc")

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, "engineer", p.Search)
	assert.Equal(t, "title", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)
	assert.Equal(t, 50, p.Offset())
}

func TestParse_ClampsGarbage(t *testing.T) {
	p := paramsFor(t, "page=-2&limit=9999&sort_order=sideways")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, listquery.MaxLimit, p.Limit)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestSortColumn_Whitelist(t *testing.T) {
	p := listquery.Params{SortBy: "(SELECT pg_sleep(10))--", SortOrder: "desc"}
	assert.Equal(t, "created_at", p.SortColumn("created_at", "created_at", "title"))
	assert.Equal(t, "created_at desc", p.OrderClause("created_at", "created_at", "title"))

	p.SortBy = "title"
	p.SortOrder = "asc"
	assert.Equal(t, "title", p.SortColumn("created_at", "created_at", "title"))
	assert.Equal(t, "title asc", p.OrderClause("created_at", "created_at", "title"))
}
