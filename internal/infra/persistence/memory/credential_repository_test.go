package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"cabradar/internal/domain/entity"
	"cabradar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_InsertAndFind(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	err := repo.Insert(ctx, &entity.User{Email: "demo@test.com", PasswordDigest: "digest", Name: "Demo User"})
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "demo@test.com")
	require.NoError(t, err)
	assert.Equal(t, "digest", user.PasswordDigest)
	assert.Equal(t, "Demo User", user.Name)
}

func TestCredentialRepository_EmailIsCaseSensitive(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.User{Email: "demo@test.com"}))

	_, err := repo.FindByEmail(ctx, "Demo@Test.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.NoError(t, repo.Insert(ctx, &entity.User{Email: "Demo@Test.com"}))
}

func TestCredentialRepository_DuplicateKeepsOriginal(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.User{Email: "demo@test.com", PasswordDigest: "first"}))

	err := repo.Insert(ctx, &entity.User{Email: "demo@test.com", PasswordDigest: "second"})
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)

	user, err := repo.FindByEmail(ctx, "demo@test.com")
	require.NoError(t, err)
	assert.Equal(t, "first", user.PasswordDigest)
}

func TestCredentialRepository_FindReturnsCopy(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &entity.User{Email: "demo@test.com", Name: "Demo User"}))

	user, err := repo.FindByEmail(ctx, "demo@test.com")
	require.NoError(t, err)
	user.Name = "changed"

	again, err := repo.FindByEmail(ctx, "demo@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", again.Name)
}

func TestCredentialRepository_ConcurrentInsertSingleWinner(t *testing.T) {
	repo := NewCredentialRepository()
	ctx := context.Background()

	const workers = 64
	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			if err := repo.Insert(ctx, &entity.User{Email: "race@test.com"}); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
