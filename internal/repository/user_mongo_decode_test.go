package repository

import (
	"testing"

	"user-directory-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func decodeUserDocument(t *testing.T, raw bson.M) (userDocument, error) {
	t.Helper()

	data, err := bson.Marshal(raw)
	require.NoError(t, err)

	var doc userDocument
	err = bson.Unmarshal(data, &doc)
	return doc, err
}

func TestUserDocument_DecodesLegacyStringFields(t *testing.T) {
	doc, err := decodeUserDocument(t, bson.M{
		"uniqueid":      "u-legacy",
		"rank":          "2",
		"username":      "legacy",
		"accountStatus": "1",
		"ipList":        `["10.0.0.1","10.0.0.2"]`,
		"access":        `{"games":[{"name":["chess"]}]}`,
	})
	require.NoError(t, err)

	user := doc.toDomain()
	assert.Equal(t, domain.Rank(2), user.Rank)
	assert.Equal(t, domain.AccountStatus(1), user.AccountStatus)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, user.IPList)
	assert.Equal(t, domain.Access{Games: []domain.Game{{Name: []string{"chess"}}}}, user.Access)
}

func TestUserDocument_DecodesCommaSeparatedIPList(t *testing.T) {
	doc, err := decodeUserDocument(t, bson.M{
		"uniqueid": "u-legacy",
		"ipList":   "10.0.0.1, 10.0.0.2,",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, doc.toDomain().IPList)
}

func TestUserDocument_DecodesCurrentShape(t *testing.T) {
	doc, err := decodeUserDocument(t, bson.M{
		"uniqueid":      "u-current",
		"rank":          int32(3),
		"accountStatus": int64(2),
		"ipList":        bson.A{"10.0.0.3"},
		"access":        bson.M{"games": bson.A{bson.M{"name": bson.A{"go"}}}},
	})
	require.NoError(t, err)

	user := doc.toDomain()
	assert.Equal(t, domain.Rank(3), user.Rank)
	assert.Equal(t, domain.AccountStatus(2), user.AccountStatus)
	assert.Equal(t, []string{"10.0.0.3"}, user.IPList)
	assert.Equal(t, domain.Access{Games: []domain.Game{{Name: []string{"go"}}}}, user.Access)
}

func TestUserDocument_NullFieldsDecodeEmpty(t *testing.T) {
	doc, err := decodeUserDocument(t, bson.M{
		"uniqueid": "u-empty",
		"ipList":   nil,
		"access":   nil,
	})
	require.NoError(t, err)

	user := doc.toDomain()
	assert.Empty(t, user.IPList)
	assert.Empty(t, user.Access.Games)
}

func TestUserDocument_RejectsNonIntegralRank(t *testing.T) {
	_, err := decodeUserDocument(t, bson.M{
		"uniqueid": "u-fraction",
		"rank":     2.9,
	})
	assert.Error(t, err)

	doc, err := decodeUserDocument(t, bson.M{
		"uniqueid": "u-whole",
		"rank":     float64(4),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Rank(4), doc.toDomain().Rank)
}
