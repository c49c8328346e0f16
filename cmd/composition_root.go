package cmd

import (
	"log/slog"
	"time"

	httpin "fastex/internal/adapters/in/http"
	"fastex/internal/adapters/out/auth"
	"fastex/internal/adapters/out/bookingapi"
	"fastex/internal/adapters/out/postgres"
	redisout "fastex/internal/adapters/out/redis"
	"fastex/internal/adapters/out/session"
	"fastex/internal/core/application/draft"
	"fastex/internal/core/application/lifecycle"
	"fastex/internal/core/application/masterdata"
	"fastex/internal/core/application/usecases/commands"
	"fastex/internal/core/application/usecases/queries"
	"fastex/internal/core/domain/services"
	"fastex/internal/core/ports"
	"fastex/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	lock       ports.CancellationLock
	publisher  ports.NotificationPublisher
	tokens     *auth.JWTTokens
	hasher     auth.BcryptHasher
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient redis.Cmdable,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	tokens, err := auth.NewJWTTokens(config.JWTSecret, config.JWTTTL, nil)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		lock:       redisout.NewCancellationLock(redisClient),
		publisher:  publisher,
		tokens:     tokens,
		hasher:     auth.NewBcryptHasher(0),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory(), nil)
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	return commands.NewCancelBookingCommandHandler(c.bookingUoWFactory(), c.lock, c.config.CancellationLockTTL, nil)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateForwardNotificationsCommandHandler() commands.ForwardNotificationsCommandHandler {
	return commands.NewForwardNotificationsCommandHandler(c.outboxUoWFactory(), c.publisher, nil)
}

func (c *CompositionRoot) CreateCleanupNotificationsCommandHandler() commands.CleanupNotificationsCommandHandler {
	return commands.NewCleanupNotificationsCommandHandler(c.outboxUoWFactory(), nil)
}

func (c *CompositionRoot) CreateGetMyBookingsQueryHandler() queries.GetMyBookingsQueryHandler {
	return queries.NewGetMyBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMasterDataQueryHandler() queries.GetMasterDataQueryHandler {
	return queries.NewGetMasterDataQueryHandler()
}

// NewHTTPServer builds the Booking Store API with request validation.
func (c *CompositionRoot) NewHTTPServer() (*echo.Echo, error) {
	createBooking := c.CreateCreateBookingCommandHandler()
	cancelBooking := c.CreateCancelBookingCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	authenticateUser := c.CreateAuthenticateUserCommandHandler()

	server := httpin.NewServer(
		&createBooking,
		&cancelBooking,
		&registerUser,
		&authenticateUser,
		c.CreateGetMyBookingsQueryHandler(),
		c.CreateGetMasterDataQueryHandler(),
		c.tokens,
		c.logger,
	)

	swagger, err := httpin.LoadSwagger()
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(server, swagger, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	forward := c.CreateForwardNotificationsCommandHandler()
	cleanup := c.CreateCleanupNotificationsCommandHandler()
	return jobs.NewJobManager(&forward, &cleanup, c.config.OutboxBatchSize, c.config.OutboxRetention, c.logger)
}

// BookingSession is the client core of one customer session.
type BookingSession struct {
	Catalog    *masterdata.Cache
	Drafts     *draft.Manager
	Controller *lifecycle.Controller
	Auth       *session.Store
}

// NewBookingSession wires a client session against the Booking Store at
// baseURL. The session starts signed out with an empty catalog.
func NewBookingSession(baseURL string, timeout time.Duration, logger *slog.Logger) (*BookingSession, error) {
	client, err := bookingapi.NewClient(baseURL, timeout)
	if err != nil {
		return nil, err
	}

	gate := session.NewStore(nil)
	drafts := draft.NewManager(services.NewPricing(nil))

	return &BookingSession{
		Catalog:    masterdata.NewCache(client, logger),
		Drafts:     drafts,
		Controller: lifecycle.NewController(drafts, client, gate, logger),
		Auth:       gate,
	}, nil
}

func (c *CompositionRoot) NewBookingSession() (*BookingSession, error) {
	return NewBookingSession(c.config.BookingAPIBaseURL, c.config.BookingAPIHTTPTimeout, c.logger)
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
