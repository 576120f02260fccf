package domain

import "fmt"

// FieldKind — одно из десяти редактируемых полей пользователя.
type FieldKind string

const (
	FieldRank          FieldKind = "rank"
	FieldUsername      FieldKind = "username"
	FieldUniqueID      FieldKind = "uniqueid"
	FieldEmail         FieldKind = "email"
	FieldDiscordID     FieldKind = "discordId"
	FieldDiscordName   FieldKind = "discordName"
	FieldAccountStatus FieldKind = "accountStatus"
	FieldIPList        FieldKind = "ipList"
	FieldPCHWID        FieldKind = "pc_hwid"
	FieldAccess        FieldKind = "access"
)

var fieldKinds = []FieldKind{
	FieldRank, FieldUsername, FieldUniqueID, FieldEmail, FieldDiscordID,
	FieldDiscordName, FieldAccountStatus, FieldIPList, FieldPCHWID, FieldAccess,
}

// AllFieldKinds возвращает все редактируемые поля.
func AllFieldKinds() []FieldKind {
	out := make([]FieldKind, len(fieldKinds))
	copy(out, fieldKinds)
	return out
}

// ParseFieldKind возвращает ErrInvalidField для любого поля вне перечисления.
func ParseFieldKind(s string) (FieldKind, error) {
	for _, f := range fieldKinds {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidField, s)
}

// RequiresSync сообщает, нужно ли зеркалировать изменение поля во внешнюю систему.
func (f FieldKind) RequiresSync() bool {
	return f == FieldRank || f == FieldUsername
}

// SearchKind — тип идентификатора для поиска пользователя.
type SearchKind string

const (
	SearchUniqueID  SearchKind = "uniqueid"
	SearchDiscordID SearchKind = "discordId"
	SearchUsername  SearchKind = "username"
	SearchEmail     SearchKind = "email"
)

// ParseSearchKind разбирает тип поиска.
func ParseSearchKind(s string) (SearchKind, error) {
	switch SearchKind(s) {
	case SearchUniqueID, SearchDiscordID, SearchUsername, SearchEmail:
		return SearchKind(s), nil
	}
	return "", fmt.Errorf("%w: invalid search type %q", ErrInvalidValue, s)
}
