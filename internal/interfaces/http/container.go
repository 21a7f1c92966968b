package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	chatservices "github.com/ecoride/helpdesk/internal/application/chat/services"
	chatusecases "github.com/ecoride/helpdesk/internal/application/chat/usecases"
	knowledgeusecases "github.com/ecoride/helpdesk/internal/application/knowledge/usecases"
	queryusecases "github.com/ecoride/helpdesk/internal/application/query/usecases"
	"github.com/ecoride/helpdesk/internal/infrastructure/auth"
	"github.com/ecoride/helpdesk/internal/infrastructure/config"
	"github.com/ecoride/helpdesk/internal/infrastructure/email"
	"github.com/ecoride/helpdesk/internal/infrastructure/permission"
	"github.com/ecoride/helpdesk/internal/infrastructure/repository"
	"github.com/ecoride/helpdesk/internal/infrastructure/scheduler"
	"github.com/ecoride/helpdesk/internal/infrastructure/services"
	chathandlers "github.com/ecoride/helpdesk/internal/interfaces/http/handlers/chat"
	knowledgehandlers "github.com/ecoride/helpdesk/internal/interfaces/http/handlers/knowledge"
	queryhandlers "github.com/ecoride/helpdesk/internal/interfaces/http/handlers/query"
	"github.com/ecoride/helpdesk/internal/interfaces/http/middleware"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers, and middleware together
// and owns the lifecycle of background components.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	knowledgeRepo    *repository.KnowledgeRepository
	conversationRepo *repository.ConversationRepository
	messageRepo      *repository.MessageRepository
	queryRepo        *repository.QueryRepository
	profileRepo      *repository.ProfileRepository

	// Infrastructure services
	jwtService      *auth.JWTService
	enforcer        *permission.Enforcer
	replyScheduler  scheduler.ReplyScheduler
	numberGenerator *services.QueryNumberGenerator
	emailService    queryusecases.AnsweredNotifier

	// Application services
	autoResponder *chatservices.AutoResponder

	// Handlers
	knowledgeHandler *knowledgehandlers.Handler
	chatHandler      *chathandlers.Handler
	queryHandler     *queryhandlers.Handler

	// Middleware
	authMiddleware *middleware.AuthMiddleware
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initKnowledge()
	c.initChat()
	c.initQuery()
	c.setupMiddleware()
	c.setupRoutes()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.knowledgeRepo = repository.NewKnowledgeRepository(c.db)
	c.conversationRepo = repository.NewConversationRepository(c.db)
	c.messageRepo = repository.NewMessageRepository(c.db)
	c.queryRepo = repository.NewQueryRepository(c.db)
	c.profileRepo = repository.NewProfileRepository(c.db)

	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log.Named("auth"))

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return err
	}
	if err := permission.InitPortalPermissions(enforcer, c.log.Named("permission")); err != nil {
		return err
	}
	c.enforcer = enforcer

	if c.cfg.RateLimit.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
	}

	c.replyScheduler = scheduler.NewTimerScheduler(c.log.Named("scheduler"))
	c.numberGenerator = services.NewQueryNumberGenerator(c.db, c.log)

	if c.cfg.Email.Enabled {
		c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPass,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
			BaseURL:     c.cfg.Server.BaseURL,
		})
	} else {
		c.emailService = email.NewNoopEmailService()
	}

	return nil
}

func (c *Container) initKnowledge() {
	log := c.log.Named("knowledge")
	renderer := markdown.NewRenderer()

	c.knowledgeHandler = knowledgehandlers.NewHandler(
		knowledgeusecases.NewAddEntryUseCase(c.knowledgeRepo, log),
		knowledgeusecases.NewUpdateEntryUseCase(c.knowledgeRepo, log),
		knowledgeusecases.NewSetEntryStatusUseCase(c.knowledgeRepo, log),
		knowledgeusecases.NewRemoveEntryUseCase(c.knowledgeRepo, log),
		knowledgeusecases.NewListEntriesUseCase(c.knowledgeRepo, log),
		knowledgeusecases.NewGetHelpCenterUseCase(c.knowledgeRepo, renderer, log),
		log,
	)
}

func (c *Container) initChat() {
	log := c.log.Named("chat")
	chatCfg := c.cfg.Chat

	c.autoResponder = chatservices.NewAutoResponder(
		c.knowledgeRepo,
		c.conversationRepo,
		c.messageRepo,
		c.replyScheduler,
		chatCfg.FallbackMessage,
		time.Duration(chatCfg.AutoReplyDelayMS)*time.Millisecond,
		log.Named("autoresponder"),
	)

	c.chatHandler = chathandlers.NewHandler(
		chatusecases.NewStartConversationUseCase(c.conversationRepo, c.messageRepo, chatCfg.DefaultTitle, chatCfg.WelcomeMessage, log),
		chatusecases.NewSendMessageUseCase(c.conversationRepo, c.messageRepo, c.autoResponder, chatCfg.DefaultTitle, log),
		chatusecases.NewListConversationsUseCase(c.conversationRepo, log),
		chatusecases.NewListMessagesUseCase(c.conversationRepo, c.messageRepo, log),
		log,
	)
}

func (c *Container) initQuery() {
	log := c.log.Named("query")

	c.queryHandler = queryhandlers.NewHandler(
		queryusecases.NewSubmitQueryUseCase(c.queryRepo, c.numberGenerator, log),
		queryusecases.NewRespondToQueryUseCase(c.queryRepo, c.profileRepo, c.emailService, log),
		queryusecases.NewCloseQueryUseCase(c.queryRepo, log),
		queryusecases.NewGetQueryUseCase(c.queryRepo, c.profileRepo, log),
		queryusecases.NewListQueriesUseCase(c.queryRepo, c.profileRepo, log),
		log,
	)
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background components. Pending auto-replies are dropped,
// which is acceptable: they are canned answers, not customer data.
func (c *Container) Shutdown(ctx context.Context) error {
	c.replyScheduler.Stop()
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	return nil
}
