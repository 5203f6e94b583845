// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package store persists declarations and signers in SQLite. With no data
// directory configured it falls back to a shared in-memory database,
// which is what the tests use.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AleutianAI/AleutianDeclare/services/declare/datatypes"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert collides with a unique index
// (public declaration ID or signer identity hash).
var ErrDuplicate = errors.New("duplicate record")

// translateError maps SQLite unique-constraint failures to ErrDuplicate.
// The glebarez driver surfaces them as plain error strings, so this
// matches on the message like gorm's own sqlite dialector does.
func translateError(err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint") {
		return ErrDuplicate
	}
	return err
}

// Store wraps the SQLite database holding all declaration and signer
// records.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// New opens (or creates) the declarations database under dataDir and runs
// schema migration. An empty dataDir selects an in-memory database.
func New(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := "file::memory:?cache=shared"
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		dsn = filepath.Join(dataDir, "declare.sqlite")
	}
	logger.Info("opening declarations database", "dsn", dsn)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&datatypes.Declaration{},
		&datatypes.Signer{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// =============================================================================
// Declarations
// =============================================================================

// CreateDeclaration inserts a new declaration record. A public-ID
// collision returns ErrDuplicate.
func (s *Store) CreateDeclaration(d *datatypes.Declaration) error {
	if result := s.db.Create(d); result.Error != nil {
		return fmt.Errorf("create declaration: %w", translateError(result.Error))
	}
	return nil
}

// UpdateDeclaration saves all fields of an existing declaration.
func (s *Store) UpdateDeclaration(d *datatypes.Declaration) error {
	if result := s.db.Save(d); result.Error != nil {
		return fmt.Errorf("update declaration: %w", result.Error)
	}
	return nil
}

// FinalizeHash stores the validation hash computed for a finalized
// declaration, leaving the rest of the record untouched.
func (s *Store) FinalizeHash(declarationID, hash string) error {
	result := s.db.Model(&datatypes.Declaration{}).
		Where("declaration_id = ?", declarationID).
		Update("validation_hash", hash)
	if result.Error != nil {
		return fmt.Errorf("finalize hash: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetDeclaration looks up a declaration by its public registry ID.
func (s *Store) GetDeclaration(declarationID string) (*datatypes.Declaration, error) {
	var d datatypes.Declaration
	result := s.db.Where("declaration_id = ?", declarationID).First(&d)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get declaration: %w", result.Error)
	}
	return &d, nil
}

// =============================================================================
// Signers
// =============================================================================

// CreateSigner inserts a new signer record. The identity hash carries a
// unique index, so signing twice with identical identity data at the same
// timestamp returns ErrDuplicate.
func (s *Store) CreateSigner(sg *datatypes.Signer) error {
	if result := s.db.Create(sg); result.Error != nil {
		return fmt.Errorf("create signer: %w", translateError(result.Error))
	}
	return nil
}

// GetSignerByHashShort looks up a signer by the 8-character prefix of its
// identity hash.
func (s *Store) GetSignerByHashShort(hashShort string) (*datatypes.Signer, error) {
	var sg datatypes.Signer
	result := s.db.Where("hash_short = ?", hashShort).First(&sg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get signer: %w", result.Error)
	}
	return &sg, nil
}

// ListPublicSigners returns the signers who opted into the public list,
// newest first.
func (s *Store) ListPublicSigners() ([]datatypes.Signer, error) {
	var signers []datatypes.Signer
	result := s.db.Where("public_listing = ?", true).
		Order("created_at DESC").Find(&signers)
	if result.Error != nil {
		return nil, fmt.Errorf("list signers: %w", result.Error)
	}
	return signers, nil
}

// SetORCIDVerified marks a signer's ORCID as verified and records the
// name registered at ORCID.
func (s *Store) SetORCIDVerified(signerID, registeredName string) error {
	result := s.db.Model(&datatypes.Signer{}).
		Where("signer_id = ?", signerID).
		Updates(map[string]any{
			"orc_id_verified":        true,
			"orc_id_registered_name": registeredName,
		})
	if result.Error != nil {
		return fmt.Errorf("set orcid verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
