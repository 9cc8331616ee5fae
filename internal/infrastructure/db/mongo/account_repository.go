package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// DefaultAccountsCollection is the collection the portal stores users in.
const DefaultAccountsCollection = "users"

// AccountRepository reads portal accounts. It never writes.
type AccountRepository struct {
	coll *mongo.Collection
}

// NewAccountRepository returns a repository over collection in db. An empty
// collection name selects DefaultAccountsCollection.
func NewAccountRepository(db *mongo.Database, collection string) *AccountRepository {
	if collection == "" {
		collection = DefaultAccountsCollection
	}
	return &AccountRepository{coll: db.Collection(collection)}
}

// accountDocument mirrors the stored shape. role and roles are raw because
// older records hold a string where newer ones hold an array.
type accountDocument struct {
	ID        bson.RawValue `bson:"_id"`
	Email     string        `bson:"email"`
	Name      string        `bson:"name,omitempty"`
	Role      bson.RawValue `bson:"role,omitempty"`
	Roles     bson.RawValue `bson:"roles,omitempty"`
	Status    string        `bson:"status,omitempty"`
	Deleted   bool          `bson:"deleted,omitempty"`
	CreatedAt time.Time     `bson:"created_at,omitempty"`
	UpdatedAt time.Time     `bson:"updated_at,omitempty"`
}

var accountProjection = bson.M{"password_hash": 0, "password": 0}

// emailCollation compares case-insensitively, so the claim email matches the
// stored address whatever casing either side was written with. A unique
// index on email with the same collation lets the lookup use it.
var emailCollation = &options.Collation{Locale: "en", Strength: 2}

// FindActiveByEmail implements ports.AccountRepository.
func (r *AccountRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.Account, error) {
	filter := bson.M{
		"email":   strings.TrimSpace(email),
		"deleted": bson.M{"$ne": true},
	}

	var doc accountDocument
	opts := options.FindOne().
		SetProjection(accountProjection).
		SetCollation(emailCollation)
	err := r.coll.FindOne(ctx, filter, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return doc.toDomain(), nil
}

func (d *accountDocument) toDomain() *domain.Account {
	a := &domain.Account{
		ID:        rawID(d.ID),
		Email:     d.Email,
		Name:      d.Name,
		Roles:     rawStrings(d.Roles),
		Status:    domain.AccountStatus(d.Status),
		Deleted:   d.Deleted,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if s, ok := d.Role.StringValueOK(); ok {
		a.Role = s
	} else if len(a.Roles) == 0 {
		a.Roles = rawStrings(d.Role)
	}
	return a
}

func rawID(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return ""
}

// rawStrings reads a string or an array of strings. Non-string array
// elements are skipped.
func rawStrings(v bson.RawValue) []string {
	if s, ok := v.StringValueOK(); ok {
		return []string{s}
	}
	arr, ok := v.ArrayOK()
	if !ok {
		return nil
	}
	values, err := arr.Values()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, el := range values {
		if s, ok := el.StringValueOK(); ok {
			out = append(out, s)
		}
	}
	return out
}
