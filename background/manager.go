package background

import (
	"errors"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campus-aid/campus-aid-api/lifecycle"
	"github.com/campus-aid/campus-aid-api/store"
)

// BackgroundManager is a struct for campus-aid background manager
type BackgroundManager struct {
	coordinator *lifecycle.Coordinator

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &BackgroundManager{
		coordinator: lifecycle.New(mongoStore, mongoStore),
		taskServer:  taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// EnqueuePeriodically submits the named task on a fixed interval until
// done is closed.
func (m *BackgroundManager) EnqueuePeriodically(name string, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if _, err := m.taskServer.SendTask(&tasks.Signature{Name: name}); err != nil {
				log.WithField("prefix", "background").WithError(err).Errorf("enqueue task %s", name)
			}
		}
	}
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("campus-aid-worker", 5)
	return m.worker.Launch()
}
