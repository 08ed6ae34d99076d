package db

import (
	"context"
	"errors"
	"testing"

	"github.com/ghstudios/mhgen-catalog/pkg/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testModel struct {
	ID   int
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := Open(sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestWithTx_CommitsAndRollbacks(t *testing.T) {
	db := newTestDB(t)
	client := NewFromConn(db, DriverSQLite)

	ctx := context.Background()
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&testModel{Name: "committed"}).Error
	}); err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}

	var count int64
	if err := db.Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}

	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&testModel{Name: "rolled"}).Error; err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected WithTx to return an error")
	}
	if err := db.Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed after rollback: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected rollback to leave 1 record, got %d", count)
	}
}

func TestPing(t *testing.T) {
	client := NewFromConn(newTestDB(t), DriverSQLite)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}

func TestNewWithSQLiteFlag(t *testing.T) {
	cfg := config.DBConfig{SQLitePath: "file:" + t.Name() + "?mode=memory&cache=shared", MaxOpenConns: 1}
	client, err := New(context.Background(), cfg, config.FeatureFlagsConfig{UseSQLite: true}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()
	if client.Driver() != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %s", client.Driver())
	}
}

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, config.FeatureFlagsConfig{}, nil); err == nil {
		t.Fatal("expected missing dsn error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "wishlists_name_key"`)
	if !IsUniqueViolation(err, "") {
		t.Fatal("expected duplicate key detection")
	}
	if !IsUniqueViolation(err, "wishlists_name_key") {
		t.Fatal("expected constraint match")
	}
	if IsUniqueViolation(err, "other_key") {
		t.Fatal("unexpected constraint match")
	}
	if IsUniqueViolation(errors.New("UNIQUE constraint failed: wishlist_items.wishlist_id"), "") != true {
		t.Fatal("expected sqlite unique detection")
	}
}

func TestIsUniqueViolationOnTable(t *testing.T) {
	err := errors.New("UNIQUE constraint failed: wishlist_items.wishlist_id, wishlist_items.item_id, wishlist_items.path")
	if !IsUniqueViolationOnTable(err, "wishlist_items") {
		t.Fatal("expected table match")
	}
	if IsUniqueViolationOnTable(err, "wishlist") {
		t.Fatal("table prefix must not match")
	}
	if IsUniqueViolationOnTable(errors.New(`duplicate key value violates unique constraint "wishlist_items_wishlist_item_path_key"`), "wishlist_items") {
		t.Fatal("postgres messages are matched by constraint name")
	}
	if IsUniqueViolationOnTable(nil, "wishlist_items") {
		t.Fatal("nil error must not match")
	}
}
