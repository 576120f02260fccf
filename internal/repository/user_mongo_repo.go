package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"user-directory-service/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MongoUserRepository хранит пользователей как документы коллекции users.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository создает новый экземпляр MongoUserRepository.
func NewMongoUserRepository(collection *mongo.Collection) domain.UserRepository {
	return &MongoUserRepository{collection: collection}
}

// numericValue читает число, записанное как int32, int64, double или десятичная строка.
// Старые документы хранят rank и accountStatus строками.
type numericValue int

func (n *numericValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}

	switch t {
	case bson.TypeInt32:
		*n = numericValue(v.Int32())
	case bson.TypeInt64:
		*n = numericValue(v.Int64())
	case bson.TypeDouble:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
			return fmt.Errorf("non-integral numeric value %v", f)
		}
		*n = numericValue(int(f))
	case bson.TypeString:
		i, err := strconv.Atoi(strings.TrimSpace(v.StringValue()))
		if err != nil {
			return fmt.Errorf("non-numeric value %q: %w", v.StringValue(), err)
		}
		*n = numericValue(i)
	case bson.TypeNull, bson.TypeUndefined:
		*n = 0
	default:
		return fmt.Errorf("unsupported bson type %s for numeric field", t)
	}

	return nil
}

// ipListValue читает ipList, записанный массивом, JSON-строкой или строкой через запятую.
type ipListValue []string

func (l *ipListValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeArray:
		var ips []string
		if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&ips); err != nil {
			return fmt.Errorf("invalid ipList array: %w", err)
		}
		*l = ips
	case bson.TypeString:
		raw := strings.TrimSpace(bsoncore.Value{Type: t, Data: data}.StringValue())
		if raw == "" {
			*l = nil
			return nil
		}
		if strings.HasPrefix(raw, "[") {
			var ips []string
			if err := json.Unmarshal([]byte(raw), &ips); err != nil {
				return fmt.Errorf("invalid ipList string %q: %w", raw, err)
			}
			*l = ips
			return nil
		}
		ips := make([]string, 0)
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				ips = append(ips, part)
			}
		}
		*l = ips
	case bson.TypeNull, bson.TypeUndefined:
		*l = nil
	default:
		return fmt.Errorf("unsupported bson type %s for ipList", t)
	}

	return nil
}

// accessValue читает access как вложенный документ или как JSON-строку.
type accessValue domain.Access

func (a *accessValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var access domain.Access

	switch t {
	case bson.TypeEmbeddedDocument:
		if err := bson.Unmarshal(data, &access); err != nil {
			return fmt.Errorf("invalid access document: %w", err)
		}
	case bson.TypeString:
		raw := strings.TrimSpace(bsoncore.Value{Type: t, Data: data}.StringValue())
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &access); err != nil {
				return fmt.Errorf("invalid access string %q: %w", raw, err)
			}
		}
	case bson.TypeNull, bson.TypeUndefined:
	default:
		return fmt.Errorf("unsupported bson type %s for access", t)
	}

	*a = accessValue(access)
	return nil
}

type userDocument struct {
	UniqueID      string        `bson:"uniqueid"`
	Rank          numericValue  `bson:"rank"`
	Username      string        `bson:"username"`
	Email         string        `bson:"email"`
	DiscordName   string        `bson:"discordName"`
	DiscordID     string        `bson:"discordId"`
	AccountStatus numericValue  `bson:"accountStatus"`
	IPList        ipListValue   `bson:"ipList"`
	PCHWID        string        `bson:"pc_hwid"`
	Access        accessValue   `bson:"access"`
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		UniqueID:      d.UniqueID,
		Rank:          domain.Rank(d.Rank),
		Username:      d.Username,
		Email:         d.Email,
		DiscordName:   d.DiscordName,
		DiscordID:     d.DiscordID,
		AccountStatus: domain.AccountStatus(d.AccountStatus),
		IPList:        []string(d.IPList),
		PCHWID:        d.PCHWID,
		Access:        domain.Access(d.Access),
	}
}

// FindByIdentifier возвращает ровно один документ по идентификатору.
func (r *MongoUserRepository) FindByIdentifier(ctx context.Context, kind domain.SearchKind, value string) (*domain.User, error) {
	switch kind {
	case domain.SearchUniqueID, domain.SearchDiscordID, domain.SearchUsername, domain.SearchEmail:
	default:
		return nil, fmt.Errorf("%w: invalid search type %q", domain.ErrInvalidValue, kind)
	}

	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{string(kind): value}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return doc.toDomain(), nil
}

// FindByUniqueID возвращает пользователя по uniqueid.
func (r *MongoUserRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*domain.User, error) {
	return r.FindByIdentifier(ctx, domain.SearchUniqueID, uniqueID)
}

// UpdateField выполняет $set одного поля одного документа.
func (r *MongoUserRepository) UpdateField(ctx context.Context, uniqueID string, field domain.FieldKind, value any) error {
	stored, err := mongoFieldValue(field, value)
	if err != nil {
		return err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"uniqueid": uniqueID},
		bson.M{"$set": bson.M{string(field): stored}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", domain.ErrUserAlreadyExists, field)
		}
		return fmt.Errorf("failed to update user %s: %w", field, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func mongoFieldValue(field domain.FieldKind, value any) (any, error) {
	switch field {
	case domain.FieldRank:
		rank, err := valueAs[domain.Rank](field, value)
		return int(rank), err
	case domain.FieldAccountStatus:
		status, err := valueAs[domain.AccountStatus](field, value)
		return int(status), err
	case domain.FieldIPList:
		ips, err := valueAs[[]string](field, value)
		if ips == nil {
			ips = []string{}
		}
		return ips, err
	case domain.FieldAccess:
		return valueAs[domain.Access](field, value)
	case domain.FieldUsername, domain.FieldUniqueID, domain.FieldEmail,
		domain.FieldDiscordID, domain.FieldDiscordName, domain.FieldPCHWID:
		return valueAs[string](field, value)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidField, field)
}

// Insert создает документ со свежим uniqueid.
func (r *MongoUserRepository) Insert(ctx context.Context, user domain.NewUser) (string, error) {
	doc := userDocument{
		UniqueID:      uuid.NewString(),
		Rank:          numericValue(domain.RankGuest),
		Username:      user.Username,
		Email:         user.Email,
		DiscordName:   user.DiscordName,
		DiscordID:     user.DiscordID,
		AccountStatus: numericValue(domain.AccountUnverified),
		IPList:        ipListValue{user.IP},
		Access:        accessValue{Games: []domain.Game{}},
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}

	return doc.UniqueID, nil
}

// ListAll возвращает все документы, кроме перечисленных имен.
func (r *MongoUserRepository) ListAll(ctx context.Context, excludeUsernames []string) ([]*domain.User, error) {
	if excludeUsernames == nil {
		excludeUsernames = []string{}
	}

	cursor, err := r.collection.Find(ctx,
		bson.M{"username": bson.M{"$nin": excludeUsernames}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}

	return users, nil
}
