package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/chatroom-api/api"
	"github.com/linesmerrill/chatroom-api/config"
	"github.com/linesmerrill/chatroom-api/databases"
	"github.com/linesmerrill/chatroom-api/messaging"
	"github.com/linesmerrill/chatroom-api/models"
	"github.com/linesmerrill/chatroom-api/presence"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	Presence *presence.Manager
	Messages *messaging.Router
	client   databases.ClientHelper
}

// Wire builds the presence manager and message router on top of the given collections
func (a *App) Wire(pdb databases.ParticipantDatabase, mdb databases.MessageDatabase) {
	a.Messages = messaging.NewRouter(pdb, mdb, a.Config.BroadcastToken)
	a.Presence = presence.NewManager(pdb, a.Messages)
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	api.Use(r, a.Config.RequestTimeout)

	p := Participant{Presence: a.Presence}
	m := Message{Router: a.Messages}
	s := Status{Presence: a.Presence}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	r.HandleFunc("/participants", p.CreateParticipantHandler).Methods("POST")
	r.HandleFunc("/participants", p.ParticipantsHandler).Methods("GET")

	r.HandleFunc("/messages", m.CreateMessageHandler).Methods("POST")
	r.HandleFunc("/messages", m.MessagesHandler).Methods("GET")

	r.HandleFunc("/status", s.StatusHandler).Methods("POST")

	return r
}

// Handler returns the router wrapped in CORS handling, ready to be served
func (a *App) Handler() http.Handler {
	return api.CORSMiddleware(a.Router)
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {
	api.SetQueryTimeout(a.Config.QueryTimeout)

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().Errorw("failed to create new client", "error", err)
		return err
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().Errorw("failed to connect to database", "error", err)
		return err
	}
	a.client = client
	zap.S().Info("chatroom-api has connected to the database")

	dbHelper := databases.NewDatabase(&a.Config, client)
	pdb := databases.NewParticipantDatabase(dbHelper)
	if err := pdb.EnsureIndexes(ctx); err != nil {
		zap.S().Errorw("failed to create participant indexes", "error", err)
		return err
	}
	a.Wire(pdb, databases.NewMessageDatabase(dbHelper))

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Close disconnects from the database
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
