package kvstore

import (
	"context"
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionRow é a linha da tabela collections: uma coleção serializada por chave
type collectionRow struct {
	Key  string `gorm:"primaryKey;column:key"`
	Data []byte `gorm:"column:data"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// SQLite é o driver KV padrão: um arquivo local, análogo ao armazenamento
// do navegador no modelo de loja única
type SQLite struct {
	db *gorm.DB
}

// NewSQLite abre (ou cria) o arquivo de banco no caminho informado
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Load implementa KV.Load
func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return row.Data, nil
}

// Save implementa KV.Save
func (s *SQLite) Save(ctx context.Context, key string, value []byte) error {
	row := collectionRow{Key: key, Data: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row).Error
}

// Delete implementa KV.Delete
func (s *SQLite) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&collectionRow{}, "key = ?", key).Error
}

// Close implementa KV.Close
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
