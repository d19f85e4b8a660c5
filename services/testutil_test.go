package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/piskorekkevin-afk/essenstracker/config"
	"github.com/piskorekkevin-afk/essenstracker/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		ShareToken:   "token-" + username,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// fakeStore is an in-memory ImageStore.
type fakeStore struct {
	files map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: map[string][]byte{}}
}

func (f *fakeStore) Save(filename string, data []byte) error {
	f.files[filename] = data
	return nil
}

func (f *fakeStore) Load(filename string) ([]byte, error) {
	data, ok := f.files[filename]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", filename)
	}
	return data, nil
}

func (f *fakeStore) Remove(filename string) error {
	delete(f.files, filename)
	return nil
}

// fakeVision returns a canned analysis or error.
type fakeVision struct {
	analysis *MealAnalysis
	err      error
	calls    int
}

func (f *fakeVision) Classify(ctx context.Context, image []byte, mediaType string) (*MealAnalysis, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

// fakeCompleter returns canned completion text or an error.
type fakeCompleter struct {
	text string
	err  error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}
