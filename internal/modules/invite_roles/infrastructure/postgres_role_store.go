package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/application/ports"
	"github.com/sglre6355/inviterole/internal/modules/invite_roles/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultRoleMappingTable is the table holding invite code to role rows.
const DefaultRoleMappingTable = "discord_invites"

// Ensure PostgresRoleStore implements ports.RoleMappingStore.
var _ ports.RoleMappingStore = (*PostgresRoleStore)(nil)

// roleMappingRecord is one row of the role mapping table.
type roleMappingRecord struct {
	InviteCode string `gorm:"column:invite_code;primaryKey"`
	RoleID     string `gorm:"column:role_id;not null"`
}

// OpenPostgres connects to the role store database and verifies the connection.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("missing role store DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to role store: %w", err)
	}

	return db, nil
}

// PostgresRoleStore implements ports.RoleMappingStore on a Postgres table.
type PostgresRoleStore struct {
	db    *gorm.DB
	table string
}

// NewPostgresRoleStore creates a new PostgresRoleStore reading from the given table.
// An empty table name selects DefaultRoleMappingTable.
func NewPostgresRoleStore(db *gorm.DB, table string) *PostgresRoleStore {
	if table == "" {
		table = DefaultRoleMappingTable
	}
	return &PostgresRoleStore{
		db:    db,
		table: table,
	}
}

// FindByInviteCode returns the role mapping for the exact invite code.
func (s *PostgresRoleStore) FindByInviteCode(
	ctx context.Context,
	code string,
) (domain.RoleMapping, error) {
	var record roleMappingRecord

	err := s.byInviteCode(ctx, code).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RoleMapping{}, domain.ErrRoleMappingNotFound
	}
	if err != nil {
		return domain.RoleMapping{}, fmt.Errorf("failed to query role mapping: %w", err)
	}

	return toRoleMapping(record)
}

// Close closes the underlying database connection pool.
func (s *PostgresRoleStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresRoleStore) byInviteCode(ctx context.Context, code string) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.table).Where("invite_code = ?", code)
}

// toRoleMapping converts a stored row to a domain RoleMapping.
func toRoleMapping(record roleMappingRecord) (domain.RoleMapping, error) {
	roleID, err := snowflake.Parse(strings.TrimSpace(record.RoleID))
	if err != nil {
		return domain.RoleMapping{}, fmt.Errorf(
			"invalid role id %q for invite %q: %w", record.RoleID, record.InviteCode, err,
		)
	}

	return domain.RoleMapping{
		InviteCode: record.InviteCode,
		RoleID:     roleID,
	}, nil
}
