package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/mail"
	"net/netip"
	"strconv"
	"strings"

	"user-directory-service/internal/domain"
	"user-directory-service/internal/sanitize"
)

// fieldValue — значение поля, приведенное к типу, который ожидает репозиторий,
// и его строковая форма для внешней синхронизации.
type fieldValue struct {
	typed  any
	mirror string
}

func parseFieldValue(field domain.FieldKind, data string) (fieldValue, error) {
	switch field {
	case domain.FieldRank:
		rank, err := domain.ParseRank(sanitize.String(data))
		if err != nil {
			return fieldValue{}, err
		}
		return fieldValue{typed: rank, mirror: strconv.Itoa(int(rank))}, nil

	case domain.FieldAccountStatus:
		status, err := domain.ParseAccountStatus(sanitize.String(data))
		if err != nil {
			return fieldValue{}, err
		}
		return fieldValue{typed: status, mirror: strconv.Itoa(int(status))}, nil

	case domain.FieldUsername, domain.FieldUniqueID:
		s := strings.TrimSpace(sanitize.String(data))
		if s == "" {
			return fieldValue{}, fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidValue, field)
		}
		return fieldValue{typed: s, mirror: s}, nil

	case domain.FieldEmail:
		email, err := parseEmail(data)
		if err != nil {
			return fieldValue{}, err
		}
		return fieldValue{typed: email, mirror: email}, nil

	case domain.FieldDiscordID, domain.FieldDiscordName, domain.FieldPCHWID:
		s := strings.TrimSpace(sanitize.String(data))
		return fieldValue{typed: s, mirror: s}, nil

	case domain.FieldIPList:
		ips, err := parseIPList(data)
		if err != nil {
			return fieldValue{}, err
		}
		return fieldValue{typed: ips, mirror: strings.Join(ips, ",")}, nil

	case domain.FieldAccess:
		access, err := parseAccess(data)
		if err != nil {
			return fieldValue{}, err
		}
		return fieldValue{typed: access}, nil
	}

	return fieldValue{}, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
}

func parseEmail(raw string) (string, error) {
	s := strings.TrimSpace(sanitize.String(raw))
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", fmt.Errorf("%w: %q is not an email address", domain.ErrInvalidValue, s)
	}
	return addr.Address, nil
}

func parseIP(raw string) (string, error) {
	s := strings.TrimSpace(sanitize.String(raw))
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not an IP address", domain.ErrInvalidValue, s)
	}
	return addr.String(), nil
}

// parseIPList принимает JSON-массив строк или список через запятую.
func parseIPList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)

	var items []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("%w: ipList: %v", domain.ErrInvalidValue, err)
		}
	} else if raw != "" {
		items = strings.Split(raw, ",")
	}

	ips := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		ip, err := parseIP(item)
		if err != nil {
			return nil, err
		}
		ips = append(ips, ip)
	}
	return ips, nil
}

func parseAccess(raw string) (domain.Access, error) {
	var access domain.Access

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&access); err != nil {
		return domain.Access{}, fmt.Errorf("%w: access: %v", domain.ErrInvalidValue, err)
	}
	if dec.More() {
		return domain.Access{}, fmt.Errorf("%w: access: trailing data", domain.ErrInvalidValue)
	}

	for i := range access.Games {
		access.Games[i].Name = sanitize.Strings(access.Games[i].Name)
	}
	return access, nil
}
