package redis_test

import (
	"context"
	"sync"
	"testing"
	"time"

	redisadapter "fastex/internal/adapters/out/redis"
	"fastex/internal/core/domain/model/kernel"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type CancellationLockIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
}

func (suite *CancellationLockIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redisadapter.NewClient(endpoint, "", 0)
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *CancellationLockIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
}

func (suite *CancellationLockIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CancellationLockIntegrationTestSuite) TestAcquire_SecondAttemptIsRejected() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)
	id := kernel.NewUUID()

	token, first, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.True(first)
	suite.NotEmpty(token)

	again, second, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.False(second)
	suite.Empty(again)
}

func (suite *CancellationLockIntegrationTestSuite) TestAcquire_DifferentBookingsDoNotConflict() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)

	tokenA, a, err := lock.Acquire(ctx, kernel.NewUUID(), time.Minute)
	suite.Require().NoError(err)
	tokenB, b, err := lock.Acquire(ctx, kernel.NewUUID(), time.Minute)
	suite.Require().NoError(err)

	suite.True(a)
	suite.True(b)
	suite.NotEqual(tokenA, tokenB)
}

func (suite *CancellationLockIntegrationTestSuite) TestRelease_AllowsReacquire() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)
	id := kernel.NewUUID()

	token, _, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.Require().NoError(lock.Release(ctx, id, token))

	_, again, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.True(again)
}

func (suite *CancellationLockIntegrationTestSuite) TestRelease_WrongTokenKeepsLock() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)
	id := kernel.NewUUID()

	_, acquired, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.Require().True(acquired)

	suite.Require().NoError(lock.Release(ctx, id, "not-the-holder"))

	_, stillFree, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.False(stillFree)
}

func (suite *CancellationLockIntegrationTestSuite) TestRelease_ExpiredHoldDoesNotFreeNewHolder() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)
	id := kernel.NewUUID()

	staleToken, acquired, err := lock.Acquire(ctx, id, 100*time.Millisecond)
	suite.Require().NoError(err)
	suite.Require().True(acquired)

	var currentToken string
	suite.Require().Eventually(func() bool {
		token, ok, acquireErr := lock.Acquire(ctx, id, time.Minute)
		if acquireErr != nil || !ok {
			return false
		}
		currentToken = token
		return true
	}, 2*time.Second, 50*time.Millisecond)
	suite.Require().NotEqual(staleToken, currentToken)

	// The first holder finishes late and releases with its expired token.
	suite.Require().NoError(lock.Release(ctx, id, staleToken))

	_, third, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.False(third)

	suite.Require().NoError(lock.Release(ctx, id, currentToken))
	_, afterRelease, err := lock.Acquire(ctx, id, time.Minute)
	suite.Require().NoError(err)
	suite.True(afterRelease)
}

func (suite *CancellationLockIntegrationTestSuite) TestAcquire_ExpiresAfterTTL() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)
	id := kernel.NewUUID()

	_, _, err := lock.Acquire(ctx, id, 100*time.Millisecond)
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		_, ok, acquireErr := lock.Acquire(ctx, id, time.Minute)
		return acquireErr == nil && ok
	}, 2*time.Second, 50*time.Millisecond)
}

func (suite *CancellationLockIntegrationTestSuite) TestAcquire_ConcurrentCallersGetExactlyOneLock() {
	ctx := context.Background()
	lock := redisadapter.NewCancellationLock(suite.client)
	id := kernel.NewUUID()

	var wg sync.WaitGroup
	results := make(chan bool, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := lock.Acquire(ctx, id, time.Minute)
			suite.NoError(err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for ok := range results {
		if ok {
			winners++
		}
	}
	suite.Equal(1, winners)
}

func (suite *CancellationLockIntegrationTestSuite) TestAcquire_ZeroID_ReturnsError() {
	_, _, err := redisadapter.NewCancellationLock(suite.client).Acquire(context.Background(), kernel.UUID{}, time.Minute)
	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancellationLockIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CancellationLockIntegrationTestSuite))
}
