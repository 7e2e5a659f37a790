package general

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emptrack/internal/abstraction"

	"github.com/labstack/echo/v4"
)

func queryContext(t *testing.T, rawQuery string) *abstraction.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+rawQuery, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return &abstraction.Context{Context: c}
}

func TestIsValidEmpCode(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"DS007", true},
		{"DS123", true},
		{"DS000", true},
		{"ds007", false},
		{"X007", false},
		{"DS7", false},
		{"DS1234", false},
		{"DS07a", false},
		{" DS007", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmpCode(c.code); got != c.want {
			t.Errorf("IsValidEmpCode(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestFormatEmpCode(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "DS001"},
		{7, "DS007"},
		{42, "DS042"},
		{123, "DS123"},
		{999, "DS999"},
	}
	for _, c := range cases {
		if got := FormatEmpCode(c.n); got != c.want {
			t.Errorf("FormatEmpCode(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestNextEmpCode(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	cases := []struct {
		name    string
		maxCode *string
		want    string
	}{
		{"empty table starts the sequence", nil, "DS001"},
		{"follows the maximum", strPtr("DS003"), "DS004"},
		// DS001 deleted from {DS001..DS003}: the max survives, the next
		// create still gets a fresh code instead of re-issuing DS003
		{"gap below the maximum is ignored", strPtr("DS003"), "DS004"},
		{"wide rollover", strPtr("DS099"), "DS100"},
		{"garbage max resets", strPtr("bogus"), "DS001"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NextEmpCode(c.maxCode); got != c.want {
				t.Errorf("NextEmpCode(%v) = %q, want %q", c.maxCode, got, c.want)
			}
		})
	}
}

func TestNormalizeMobile(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	cases := []struct {
		name   string
		mobile *string
		want   *string
	}{
		{"nil stays nil", nil, nil},
		{"plain digits", strPtr("9876543210"), strPtr("9876543210")},
		{"formatted", strPtr("(987) 654-3210"), strPtr("9876543210")},
		{"leading plus kept", strPtr("+91 98765 43210"), strPtr("+919876543210")},
		{"inner plus dropped", strPtr("98+76"), strPtr("9876")},
		{"empty becomes nil", strPtr(""), nil},
		{"only junk becomes nil", strPtr("abc-"), nil},
		{"lone plus becomes nil", strPtr("+"), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NormalizeMobile(c.mobile)
			if (got == nil) != (c.want == nil) {
				t.Fatalf("NormalizeMobile = %v, want %v", got, c.want)
			}
			if got != nil && *got != *c.want {
				t.Errorf("NormalizeMobile = %q, want %q", *got, *c.want)
			}
		})
	}
}

func TestNormalizeMobileLeadingPlusOnly(t *testing.T) {
	in := "+91+98"
	got := NormalizeMobile(&in)
	if got == nil || *got != "+9198" {
		t.Errorf("NormalizeMobile(%q) = %v, want +9198", in, got)
	}
}

func TestParseDateOnly(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	if got := ParseDateOnly(nil); got != nil {
		t.Errorf("ParseDateOnly(nil) = %v, want nil", got)
	}
	if got := ParseDateOnly(strPtr("2024-13-01")); got != nil {
		t.Errorf("ParseDateOnly(invalid month) = %v, want nil", got)
	}
	if got := ParseDateOnly(strPtr("01-02-2024")); got != nil {
		t.Errorf("ParseDateOnly(wrong layout) = %v, want nil", got)
	}
	if got := ParseDateOnly(strPtr("2024-02-30T00:00:00")); got != nil {
		t.Errorf("ParseDateOnly(datetime) = %v, want nil", got)
	}

	got := ParseDateOnly(strPtr("2024-01-31"))
	if got == nil {
		t.Fatal("ParseDateOnly(2024-01-31) = nil")
	}
	want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateOnly(2024-01-31) = %v, want %v", got, want)
	}
}

func TestDayInReportZone(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"utc morning stays same day",
			time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"utc late evening rolls to next day",
			time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"18:29 utc is still same day",
			time.Date(2024, 1, 15, 18, 29, 59, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"18:30 utc is the boundary",
			time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DayInReportZone(c.in); !got.Equal(c.want) {
				t.Errorf("DayInReportZone(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestProcessWhereParam(t *testing.T) {
	t.Run("no params keeps the neutral clause", func(t *testing.T) {
		where, param := ProcessWhereParam(queryContext(t, ""), "task_details", "")
		if where != "1=@where" {
			t.Errorf("where = %q", where)
		}
		if len(param) != 1 {
			t.Errorf("param = %v", param)
		}
	})

	t.Run("task search binds the three columns", func(t *testing.T) {
		where, param := ProcessWhereParam(queryContext(t, "search=Login"), "task_details", "")
		for _, clause := range []string{"LOWER(task_details) LIKE @search_details", "LOWER(module) LIKE @search_module", "LOWER(submodule) LIKE @search_submodule"} {
			if !strings.Contains(where, clause) {
				t.Errorf("where %q misses %q", where, clause)
			}
		}
		if param["search_details"] != "%login%" {
			t.Errorf("search_details = %v", param["search_details"])
		}
	})

	t.Run("employee search binds name email code", func(t *testing.T) {
		where, param := ProcessWhereParam(queryContext(t, "search=ali"), "emp_details", "")
		if !strings.Contains(where, "LOWER(name) LIKE @search_name") {
			t.Errorf("where = %q", where)
		}
		if param["search_emp_code"] != "%ali%" {
			t.Errorf("search_emp_code = %v", param["search_emp_code"])
		}
	})

	t.Run("filters are bound never interpolated", func(t *testing.T) {
		where, param := ProcessWhereParam(queryContext(t, "emp_code=DS001%27%3B--&project=Phi&status=Pending"), "task_details", "")
		if strings.Contains(where, "DS001") || strings.Contains(where, "Phi") {
			t.Errorf("raw value leaked into where: %q", where)
		}
		// injection punctuation is stripped before binding
		if param["emp_code"] != "DS001--" {
			t.Errorf("emp_code = %v", param["emp_code"])
		}
		if param["project"] != "Phi" || param["status"] != "pending" {
			t.Errorf("param = %v", param)
		}
	})
}

func TestProcessLimitOffset(t *testing.T) {
	t.Run("paged default", func(t *testing.T) {
		limit, offset := ProcessLimitOffset(queryContext(t, ""), false)
		if limit != 10 || offset != 0 {
			t.Errorf("limit, offset = %d, %d", limit, offset)
		}
	})

	t.Run("no_paging returns the full collection", func(t *testing.T) {
		limit, _ := ProcessLimitOffset(queryContext(t, ""), true)
		if limit != math.MaxInt64 {
			t.Errorf("limit = %d", limit)
		}
	})

	t.Run("explicit limit wins over no_paging", func(t *testing.T) {
		limit, offset := ProcessLimitOffset(queryContext(t, "limit=5&offset=20"), true)
		if limit != 5 || offset != 20 {
			t.Errorf("limit, offset = %d, %d", limit, offset)
		}
	})
}

func TestGeneratePassword(t *testing.T) {
	got := GeneratePassword(10, 1, 1, 1, 1)
	if len(got) != 10 {
		t.Errorf("GeneratePassword length = %d, want 10", len(got))
	}
}

func TestTruncateSheetName(t *testing.T) {
	if got := TruncateSheetName("Task Report"); got != "Task Report" {
		t.Errorf("TruncateSheetName short = %q", got)
	}
	long := "a very long sheet name that exceeds the excel limit"
	if got := TruncateSheetName(long); len(got) != 31 {
		t.Errorf("TruncateSheetName long length = %d, want 31", len(got))
	}
}
