package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank — уровень привилегий пользователя. Сравнение всегда числовое.
type Rank int

const (
	RankGuest Rank = iota
	RankRegular
	RankVeteran
	RankTrusted
	RankModerator
	RankDeveloper
	RankAdmin
	RankOwner
)

// Ordering результат сравнения двух рангов.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

var rankNames = map[Rank]string{
	RankGuest:     "Guest",
	RankRegular:   "Regular",
	RankVeteran:   "Veteran",
	RankTrusted:   "Trusted",
	RankModerator: "Moderator",
	RankDeveloper: "Developer",
	RankAdmin:     "Admin",
	RankOwner:     "Owner",
}

// AllRanks возвращает лестницу рангов по возрастанию.
func AllRanks() []Rank {
	return []Rank{RankGuest, RankRegular, RankVeteran, RankTrusted, RankModerator, RankDeveloper, RankAdmin, RankOwner}
}

// Compare сравнивает ранги по числовому значению.
func Compare(a, b Rank) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// MeetsThreshold сообщает, достигает ли ранг порога.
func (r Rank) MeetsThreshold(threshold Rank) bool {
	return Compare(r, threshold) != Less
}

// Valid сообщает, входит ли ранг в лестницу.
func (r Rank) Valid() bool {
	return r >= RankGuest && r <= RankOwner
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// ParseRank разбирает ранг из десятичной строки ("6") или имени ("Admin").
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		r := Rank(n)
		if !r.Valid() {
			return 0, fmt.Errorf("%w: rank %d is out of range", ErrInvalidValue, n)
		}
		return r, nil
	}
	for r, name := range rankNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: rank %q is not numeric", ErrInvalidValue, s)
}
