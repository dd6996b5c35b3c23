// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

// Package crypto implements the journal content encryption service:
// authenticated symmetric encryption of entry plaintext with support for
// key rotation.
//
// Content is stored as fernet tokens (AES-128-CBC + HMAC-SHA256, the same
// token format the platform has always used for journal rows). The
// configured key ring may mix raw fernet keys with human-chosen
// passphrases; passphrases are stretched to fernet keys with Argon2id so a
// deployment can run on a secret it can actually type.
package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/argon2"

	"github.com/lumimood/moodcore/internal/logger"
)

// DecryptFailedSentinel is returned by [EncryptionService.Decrypt] for a
// token that fails authentication under every configured key. It is a value,
// not an error: one corrupt row must never abort a listing of many rows.
const DecryptFailedSentinel = "[decryption failed]"

// Argon2id parameters for passphrase-derived keys, per the OWASP (2024)
// recommendation: 1 iteration, 64 MiB memory, 4 threads, 256-bit output.
// The 256-bit digest covers both fernet sub-keys (signing + encryption).
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // 256 bits
)

// Errors returned during service construction.
var (
	// ErrNoKeys indicates an empty key list. The service refuses to
	// initialize rather than invent an ephemeral key, since content
	// encrypted under an ephemeral key is unrecoverable after restart.
	ErrNoKeys = errors.New("no encryption keys provided")
	// ErrNoSalt indicates a passphrase key was supplied without a
	// key-derivation salt to stretch it with.
	ErrNoSalt = errors.New("passphrase key requires a key derivation salt")
)

// EncryptionService is a stateless transform keyed by a process-wide key
// ring. The first key encrypts all new content; decryption tries every key
// in order, so rotating keys is a matter of prepending a fresh one while
// keeping the old ones listed until their content ages out.
//
// All state is read-only after construction; the service is safe for
// concurrent use.
type EncryptionService struct {
	keys   []*fernet.Key
	logger *logger.Logger
}

// NewEncryptionService builds an [EncryptionService] from the configured
// key list. Each element is either a URL-safe base64 32-byte fernet key or
// an arbitrary passphrase; passphrases are stretched with Argon2id using
// salt. Returns [ErrNoKeys] for an empty list and [ErrNoSalt] when a
// passphrase element is present but salt is empty.
func NewEncryptionService(keyList []string, salt string, log *logger.Logger) (*EncryptionService, error) {
	if len(keyList) == 0 {
		return nil, ErrNoKeys
	}

	keys := make([]*fernet.Key, 0, len(keyList))
	for i, raw := range keyList {
		key, err := decodeOrDeriveKey(raw, salt)
		if err != nil {
			return nil, fmt.Errorf("encryption key %d: %w", i, err)
		}
		keys = append(keys, key)
	}

	log.Debug().Int("keys", len(keys)).Msg("encryption service initialized")
	return &EncryptionService{keys: keys, logger: log}, nil
}

// decodeOrDeriveKey interprets one key-ring element. Well-formed fernet
// keys are used as-is; anything else is treated as a passphrase and
// stretched to a fernet key with Argon2id.
func decodeOrDeriveKey(raw, salt string) (*fernet.Key, error) {
	if key, err := fernet.DecodeKey(raw); err == nil {
		return key, nil
	}

	if salt == "" {
		return nil, ErrNoSalt
	}

	// SHA-256 the salt so short deployment salts still feed Argon2id a
	// full-width, fixed-length value.
	saltDigest := sha256.Sum256([]byte(salt))
	derived := argon2.IDKey([]byte(raw), saltDigest[:], argonTime, argonMemory, argonThreads, argonKeyLen)

	var key fernet.Key
	copy(key[:], derived)
	return &key, nil
}

// Encrypt seals plaintext under the primary key and returns the fernet
// token. Returns an error only on entropy-source failure, which callers
// must treat as a failed write (an entry is never stored unencrypted).
func (s *EncryptionService) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), s.keys[0])
	if err != nil {
		return "", fmt.Errorf("encrypt content: %w", err)
	}
	return string(token), nil
}

// Decrypt opens a token produced by [EncryptionService.Encrypt], trying
// every key in the ring (rotation support). Tokens do not expire: a journal
// is long-lived, so the fernet TTL check is disabled.
//
// A token that fails authentication under all keys yields
// [DecryptFailedSentinel] and an error log, never an error return.
func (s *EncryptionService) Decrypt(token string) string {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, s.keys)
	if plaintext == nil {
		s.logger.Error().Msg("failed to decrypt content: invalid token or wrong key")
		return DecryptFailedSentinel
	}
	return string(plaintext)
}

// process-wide shared instance, set at most once
var (
	defaultService *EncryptionService
	defaultOnce    sync.Once
	defaultErr     error
)

// Initialize sets up the process-wide service exactly once; subsequent
// calls return the first outcome unchanged. Hosts that prefer explicit
// dependency injection can ignore this and hold the value from
// [NewEncryptionService] in their composition root instead.
func Initialize(keyList []string, salt string, log *logger.Logger) (*EncryptionService, error) {
	defaultOnce.Do(func() {
		defaultService, defaultErr = NewEncryptionService(keyList, salt, log)
	})
	return defaultService, defaultErr
}

// Default returns the process-wide service, or nil if [Initialize] has not
// run (or failed). The hot path needs no further synchronization: after
// Initialize the service is read-only.
func Default() *EncryptionService {
	return defaultService
}
