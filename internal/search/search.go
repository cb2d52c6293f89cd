// Package search builds the filter predicates shared by the user, key, and
// locker listings: free-text token matching against user identity fields, and
// decimal-prefix matching against numeric key/locker numbers.
package search

import (
	"math"
	"strconv"
	"strings"

	"deptdash/internal/model"

	"gorm.io/gorm"
)

// MaxExtraDigits bounds how many digits longer than the query prefix a
// matched number may be. A prefix query "7" therefore matches 7..7999999 but
// not an 8-digit 70000000. Known limitation, kept deliberately.
const MaxExtraDigits = 6

// Field sets matched per token. The full user listing also searches the
// campus identifiers; the typeahead search endpoint matches names and email
// only.
var (
	UserListFields   = []string{"first_name", "last_name", "email", "byu_id", "net_id"}
	UserSearchFields = []string{"first_name", "last_name", "email"}
)

// Tokenize trims q and splits it on runs of whitespace or commas, dropping
// empty tokens. An empty or all-separator q yields no tokens.
func Tokenize(q string) []string {
	return strings.FieldsFunc(strings.TrimSpace(q), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// NumericPrefix reports whether the whole trimmed query is a plain decimal
// number usable for prefix matching. Queries too large for int64 fall back to
// the token-based owner match, same as non-numeric input.
func NumericPrefix(q string) (int64, bool) {
	s := strings.TrimSpace(q)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	p, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return p, true
}

// NumberRange is a half-open interval [Low, High).
type NumberRange struct {
	Low  int64
	High int64
}

// PrefixRanges returns the ranges [p·10^k, (p+1)·10^k) for k = 0..MaxExtraDigits.
// A number n falls in one of them iff its decimal representation starts with
// the decimal representation of p. Ranges that would overflow int64 are cut off.
func PrefixRanges(p int64) []NumberRange {
	ranges := make([]NumberRange, 0, MaxExtraDigits+1)
	low, high := p, p+1
	for k := 0; k <= MaxExtraDigits; k++ {
		ranges = append(ranges, NumberRange{Low: low, High: high})
		if low > math.MaxInt64/10 || high > math.MaxInt64/10 {
			break
		}
		low *= 10
		high *= 10
	}
	return ranges
}

// UserPredicate ANDs onto q, for every token, an OR-group of case-insensitive
// substring matches over fields. base must be a clean *gorm.DB session used
// only for building the grouped conditions.
func UserPredicate(q *gorm.DB, base *gorm.DB, tokens []string, fields []string) *gorm.DB {
	for _, tok := range tokens {
		pattern := "%" + tok + "%"
		group := base.Where(fields[0]+" ILIKE ?", pattern)
		for _, f := range fields[1:] {
			group = group.Or(f+" ILIKE ?", pattern)
		}
		q = q.Where(group)
	}
	return q
}

// UserIDSubquery builds a SELECT id FROM users query constrained by the token
// predicate, for use in "user_id IN (?)" conditions on owned entities.
func UserIDSubquery(base *gorm.DB, tokens []string, fields []string) *gorm.DB {
	sub := base.Model(&model.User{}).Select("id")
	return UserPredicate(sub, base, tokens, fields)
}

// NumberPredicate builds the OR-group of prefix ranges on column.
func NumberPredicate(base *gorm.DB, column string, p int64) *gorm.DB {
	ranges := PrefixRanges(p)
	group := base.Where(column+" >= ? AND "+column+" < ?", ranges[0].Low, ranges[0].High)
	for _, r := range ranges[1:] {
		group = group.Or(column+" >= ? AND "+column+" < ?", r.Low, r.High)
	}
	return group
}

// OwnedByNumber applies the key/locker listing predicate to q: an all-digit
// query matches number by decimal prefix OR the owning user by tokens; any
// other non-empty query matches the owning user only.
func OwnedByNumber(q *gorm.DB, base *gorm.DB, column, raw string) *gorm.DB {
	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return q
	}
	sub := UserIDSubquery(base, tokens, UserSearchFields)
	if p, ok := NumericPrefix(raw); ok {
		return q.Where(NumberPredicate(base, column, p).Or("user_id IN (?)", sub))
	}
	return q.Where("user_id IN (?)", sub)
}
