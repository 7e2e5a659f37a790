package general

import (
	"context"
	"emptrack/internal/abstraction"
	"emptrack/pkg/constant"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

var empCodeRegex = regexp.MustCompile(`^DS\d{3}$`)

// IsValidEmpCode reports whether code matches the DS + three digit format.
func IsValidEmpCode(code string) bool {
	return empCodeRegex.MatchString(code)
}

// FormatEmpCode builds the human-facing employee code from a sequence number,
// e.g. 7 -> DS007.
func FormatEmpCode(n int) string {
	return fmt.Sprintf("%s%0*d", constant.EMP_CODE_PREFIX, constant.EMP_CODE_DIGITS, n)
}

// NextEmpCode returns the code following the current maximum, DS001 when no
// code exists yet. Deriving from the maximum rather than the row count keeps
// the sequence moving past gaps left by deleted employees.
func NextEmpCode(maxCode *string) string {
	n := 0
	if maxCode != nil && IsValidEmpCode(*maxCode) {
		n, _ = strconv.Atoi((*maxCode)[len(constant.EMP_CODE_PREFIX):])
	}
	return FormatEmpCode(n + 1)
}

// NormalizeMobile strips everything except digits and a leading plus sign.
// Returns nil when nothing usable remains.
func NormalizeMobile(mobile *string) *string {
	if mobile == nil {
		return nil
	}
	var b strings.Builder
	for i, r := range *mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if normalized == "" || normalized == "+" {
		return nil
	}
	return &normalized
}

// ParseDateOnly accepts strictly YYYY-MM-DD. Anything else is treated as
// absent rather than an error.
func ParseDateOnly(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", *value, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// Location is the reporting timezone, a fixed UTC+5:30 offset.
func Location() *time.Location {
	return time.FixedZone("Asia/Kolkata", int(5.5*60*60))
}

// Now ...
func Now() *time.Time {
	now := time.Now()
	return &now
}

// NowUTC ...
func NowUTC() *time.Time {
	now := time.Now().UTC()
	return &now
}

// DayInReportZone converts t to the reporting zone and truncates it to the
// calendar day.
func DayInReportZone(t time.Time) time.Time {
	local := t.In(Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDateOnly ...
func FormatDateOnly(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

// FormatTimestampInReportZone renders a timestamp as DD-MM-YYYY HH:MM in the
// reporting zone, the shape used in exported sheets.
func FormatTimestampInReportZone(t time.Time) string {
	return t.In(Location()).Format("02-01-2006 15:04")
}

func FormatWithZWithoutChangingTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05") + "Z"
}

func SanitizeStringOfNumber(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
}

func SanitizeString(input string) string {
	re := regexp.MustCompile(`[%'";()=<>` + "`" + `#\[\]]`)
	sanitized := re.ReplaceAllString(input, "")

	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' ||
			r == ' ' ||
			r == '-' ||
			r == '.' ||
			r == ':' ||
			r == '/' ||
			r == '@' {
			return r
		}
		return -1
	}, sanitized)
}

// ProcessWhereParam collects the supported query filters into a bound
// parameter map, never interpolating raw input into SQL.
func ProcessWhereParam(ctx *abstraction.Context, searchType string, whereStr string) (string, map[string]interface{}) {
	var (
		where      = "1=@where"
		whereParam = map[string]interface{}{
			"where": 1,
		}
	)

	if whereStr != "" {
		where += " AND " + whereStr
	}

	if ctx.QueryParam("search") != "" {
		val := "%" + strings.ToLower(SanitizeString(ctx.QueryParam("search"))) + "%"
		switch searchType {
		case "emp_details":
			where += " AND (LOWER(name) LIKE @search_name OR LOWER(email) LIKE @search_email OR LOWER(emp_code) LIKE @search_emp_code)"
			whereParam["search_name"] = val
			whereParam["search_email"] = val
			whereParam["search_emp_code"] = val
		case "task_details":
			where += " AND (LOWER(task_details) LIKE @search_details OR LOWER(module) LIKE @search_module OR LOWER(submodule) LIKE @search_submodule)"
			whereParam["search_details"] = val
			whereParam["search_module"] = val
			whereParam["search_submodule"] = val
		}
	}

	if ctx.QueryParam("emp_code") != "" {
		val := SanitizeString(ctx.QueryParam("emp_code"))
		where += " AND emp_code = @emp_code"
		whereParam["emp_code"] = val
	}
	if ctx.QueryParam("project") != "" {
		val := SanitizeString(ctx.QueryParam("project"))
		where += " AND project = @project"
		whereParam["project"] = val
	}
	if ctx.QueryParam("status") != "" {
		val := strings.ToLower(SanitizeString(ctx.QueryParam("status")))
		where += " AND LOWER(status) = @status"
		whereParam["status"] = val
	}

	return where, whereParam
}

// ProcessLimitOffset reads pagination from the query string. With no_paging
// the default is the full collection, an explicit limit still wins.
func ProcessLimitOffset(ctx *abstraction.Context, no_paging bool) (int, int) {
	var (
		limit  = 10
		offset = 0
	)
	if no_paging || ctx.QueryParam("no_paging") == "yes" {
		limit = math.MaxInt64
	}
	if ctx.QueryParam("limit") != "" {
		if l, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("limit"))); l > 0 {
			limit = l
		}
	}
	if ctx.QueryParam("offset") != "" {
		if o, _ := strconv.Atoi(SanitizeStringOfNumber(ctx.QueryParam("offset"))); o > 0 {
			offset = o
		}
	}
	return limit, offset
}

// generate random password
func GeneratePassword(passwordLength, minSpecialChar, minNum, minUpperCase, minLowerCase int) string {
	var password strings.Builder
	var lowerCharSet string = "abcdedfghijklmnopqrstuvwxyz"
	var upperCharSet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var specialCharSet string = "!@#$%&*"
	var numberSet string = "0123456789"
	var allCharSet string = lowerCharSet + upperCharSet + specialCharSet + numberSet

	for i := 0; i < minSpecialChar; i++ {
		random := rand.Intn(len(specialCharSet))
		password.WriteString(string(specialCharSet[random]))
	}
	for i := 0; i < minNum; i++ {
		random := rand.Intn(len(numberSet))
		password.WriteString(string(numberSet[random]))
	}
	for i := 0; i < minUpperCase; i++ {
		random := rand.Intn(len(upperCharSet))
		password.WriteString(string(upperCharSet[random]))
	}
	for i := 0; i < minLowerCase; i++ {
		random := rand.Intn(len(lowerCharSet))
		password.WriteString(string(lowerCharSet[random]))
	}

	remainingLength := passwordLength - minSpecialChar - minNum - minUpperCase - minLowerCase
	for i := 0; i < remainingLength; i++ {
		random := rand.Intn(len(allCharSet))
		password.WriteString(string(allCharSet[random]))
	}

	inRune := []rune(password.String())
	rand.Shuffle(len(inRune), func(i, j int) {
		inRune[i], inRune[j] = inRune[j], inRune[i]
	})
	return string(inRune)
}

func GenerateRedisKeyUserLogin(empCode string) string {
	return constant.REDIS_KEY_USER_LOGIN + empCode
}

// GetRedisUUIDArray reads a slash-joined uuid list. Redis being unreachable
// reads as empty.
func GetRedisUUIDArray(client *redis.Client, key string) []string {
	val, err := client.Get(context.Background(), key).Result()
	if err != nil || val == "" {
		return []string{}
	}
	return strings.Split(val, "/")
}

func AppendUUIDToRedisArray(client *redis.Client, key string, newUUID string) {
	ctx := context.Background()
	val, err := client.Get(ctx, key).Result()
	if err != nil || val == "" {
		client.Set(ctx, key, newUUID, 0)
		return
	}
	client.Set(ctx, key, val+"/"+newUUID, 0)
}

func RemoveUUIDFromRedisArray(client *redis.Client, key string, targetUUID string) {
	ctx := context.Background()
	val, err := client.Get(ctx, key).Result()
	if err != nil || val == "" {
		return
	}
	uuids := strings.Split(val, "/")
	var filtered []string
	for _, uuid := range uuids {
		if uuid != targetUUID && uuid != "" {
			filtered = append(filtered, uuid)
		}
	}
	client.Set(ctx, key, strings.Join(filtered, "/"), 0)
}

func TruncateSheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
