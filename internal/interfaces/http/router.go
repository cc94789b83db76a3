package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	activityusecases "soapbox/internal/application/activity/usecases"
	boardusecases "soapbox/internal/application/board/usecases"
	commentusecases "soapbox/internal/application/comment/usecases"
	engagementusecases "soapbox/internal/application/engagement/usecases"
	settingusecases "soapbox/internal/application/setting/usecases"
	ticketusecases "soapbox/internal/application/ticket/usecases"
	workflowusecases "soapbox/internal/application/workflow/usecases"
	"soapbox/internal/infrastructure/cache"
	"soapbox/internal/infrastructure/config"
	"soapbox/internal/infrastructure/email"
	"soapbox/internal/infrastructure/markdown"
	infraperm "soapbox/internal/infrastructure/permission"
	"soapbox/internal/infrastructure/repository"
	activityhandlers "soapbox/internal/interfaces/http/handlers/activity"
	boardhandlers "soapbox/internal/interfaces/http/handlers/board"
	commenthandlers "soapbox/internal/interfaces/http/handlers/comment"
	engagementhandlers "soapbox/internal/interfaces/http/handlers/engagement"
	settinghandlers "soapbox/internal/interfaces/http/handlers/setting"
	tickethandlers "soapbox/internal/interfaces/http/handlers/ticket"
	workflowhandlers "soapbox/internal/interfaces/http/handlers/workflow"
	"soapbox/internal/interfaces/http/middleware"
	"soapbox/internal/interfaces/http/routes"
	shareddb "soapbox/internal/shared/db"
	"soapbox/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	identity *middleware.IdentityMiddleware
	logger   logger.Interface

	boardHandler      *boardhandlers.BoardHandler
	ticketHandler     *tickethandlers.TicketHandler
	commentHandler    *commenthandlers.CommentHandler
	engagementHandler *engagementhandlers.EngagementHandler
	workflowHandler   *workflowhandlers.WorkflowHandler
	activityHandler   *activityhandlers.ActivityHandler
	settingHandler    *settinghandlers.SettingHandler
	permissions       *infraperm.Enforcer
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	if err := workflowhandlers.RegisterValidations(); err != nil {
		return nil, err
	}

	boardRepo := repository.NewBoardRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	upvoteRepo := repository.NewUpvoteRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	txMgr := shareddb.NewTransactionManager(db)

	enforcer, err := infraperm.NewEnforcer(db, log)
	if err != nil {
		return nil, err
	}
	if err := infraperm.InitBoardPermissions(enforcer, log); err != nil {
		return nil, err
	}

	viewStore := cache.NewViewPreferenceStore(
		redisClient,
		time.Duration(cfg.Board.ViewPreferenceTTLHours)*time.Hour,
	)
	notifier := email.NewSMTPNotifier(cfg.Email, cfg.Server.BaseURL, log)
	renderer := markdown.NewRenderer()

	listBoardsUC := boardusecases.NewListBoardsUseCase(boardRepo, enforcer, log)
	resolveBoardUC := boardusecases.NewResolveBoardUseCase(boardRepo, enforcer, log)
	resolveViewUC := boardusecases.NewResolveViewTypeUseCase(boardRepo, viewStore, log)
	createBoardUC := boardusecases.NewCreateBoardUseCase(boardRepo, workflowRepo, log)
	updateBoardUC := boardusecases.NewUpdateBoardUseCase(boardRepo, workflowRepo, log)
	deleteBoardUC := boardusecases.NewDeleteBoardUseCase(boardRepo, &cfg.Board, log)

	resolveTicketUC := ticketusecases.NewResolveTicketUseCase(ticketRepo, log)
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, boardRepo, workflowRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, boardRepo, workflowRepo, commentRepo, upvoteRepo, renderer, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, upvoteRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, enforcer, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, boardRepo, workflowRepo, enforcer, log)
	lockTicketUC := ticketusecases.NewLockTicketUseCase(ticketRepo, enforcer, log)
	archiveTicketUC := ticketusecases.NewArchiveTicketUseCase(ticketRepo, enforcer, log)

	addCommentUC := commentusecases.NewAddCommentUseCase(ticketRepo, commentRepo, subscriptionRepo, notifier, enforcer, log)
	deleteCommentUC := commentusecases.NewDeleteCommentUseCase(commentRepo, upvoteRepo, enforcer, txMgr, log)
	getThreadUC := commentusecases.NewGetThreadUseCase(commentRepo, renderer, log)

	toggleUpvoteUC := engagementusecases.NewToggleUpvoteUseCase(upvoteRepo, ticketRepo, commentRepo, enforcer, log)
	subscribeUC := engagementusecases.NewSubscribeUseCase(subscriptionRepo, ticketRepo, log)
	unsubscribeUC := engagementusecases.NewUnsubscribeUseCase(subscriptionRepo, log)

	listStatusSetsUC := workflowusecases.NewListStatusSetsUseCase(workflowRepo, log)
	createStatusSetUC := workflowusecases.NewCreateStatusSetUseCase(workflowRepo, txMgr, log)
	deleteStatusSetUC := workflowusecases.NewDeleteStatusSetUseCase(workflowRepo, boardRepo, txMgr, log)
	addStatusUC := workflowusecases.NewAddStatusUseCase(workflowRepo, log)
	updateStatusUC := workflowusecases.NewUpdateStatusUseCase(workflowRepo, log)

	globalActivityUC := activityusecases.NewGlobalActivityUseCase(activityRepo, log)
	boardActivityUC := activityusecases.NewBoardActivityUseCase(activityRepo, log)

	getSettingsUC := settingusecases.NewGetSettingsUseCase(settingRepo, log)
	updateSettingsUC := settingusecases.NewUpdateSettingsUseCase(settingRepo, log)

	return &Router{
		engine:   engine,
		cfg:      cfg,
		identity: middleware.NewIdentityMiddleware(&cfg.Identity, log),
		logger:   log,

		boardHandler: boardhandlers.NewBoardHandler(
			listBoardsUC, resolveBoardUC, resolveViewUC,
			createBoardUC, updateBoardUC, deleteBoardUC,
		),
		ticketHandler: tickethandlers.NewTicketHandler(
			resolveBoardUC, resolveTicketUC, createTicketUC, getTicketUC,
			listTicketsUC, updateTicketUC, changeStatusUC, lockTicketUC, archiveTicketUC,
		),
		commentHandler:    commenthandlers.NewCommentHandler(addCommentUC, deleteCommentUC, getThreadUC),
		engagementHandler: engagementhandlers.NewEngagementHandler(toggleUpvoteUC, subscribeUC, unsubscribeUC),
		workflowHandler: workflowhandlers.NewWorkflowHandler(
			listStatusSetsUC, createStatusSetUC, deleteStatusSetUC, addStatusUC, updateStatusUC,
		),
		activityHandler: activityhandlers.NewActivityHandler(globalActivityUC, boardActivityUC, resolveBoardUC),
		settingHandler:  settinghandlers.NewSettingHandler(getSettingsUC, updateSettingsUC),
		permissions:     enforcer,
	}, nil
}

// SetupRoutes configures global middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.SessionKey())
	r.engine.Use(r.identity.Resolve())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupBoardRoutes(r.engine, &routes.BoardRouteConfig{
		BoardHandler:    r.boardHandler,
		TicketHandler:   r.ticketHandler,
		ActivityHandler: r.activityHandler,
		Permissions:     r.permissions,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:     r.ticketHandler,
		CommentHandler:    r.commentHandler,
		EngagementHandler: r.engagementHandler,
	})
	routes.SetupCommentRoutes(r.engine, &routes.CommentRouteConfig{
		CommentHandler:    r.commentHandler,
		EngagementHandler: r.engagementHandler,
	})
	routes.SetupWorkflowRoutes(r.engine, &routes.WorkflowRouteConfig{
		WorkflowHandler: r.workflowHandler,
		Permissions:     r.permissions,
	})
	routes.SetupSettingRoutes(r.engine, &routes.SettingRouteConfig{
		SettingHandler: r.settingHandler,
		Permissions:    r.permissions,
	})
	routes.SetupActivityRoutes(r.engine, &routes.ActivityRouteConfig{
		ActivityHandler: r.activityHandler,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
