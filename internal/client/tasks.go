package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// TasksClient implements clio.TasksClient.
type TasksClient struct {
	*resourceClient[clio.Task]
}

// NewTasksClient creates a tasks client.
func NewTasksClient(httpClient *internalhttp.Client) *TasksClient {
	return &TasksClient{newResourceClient[clio.Task](httpClient, "tasks", "task")}
}

// NotesClient implements clio.NotesClient.
type NotesClient struct {
	*resourceClient[clio.Note]
}

// NewNotesClient creates a notes client.
func NewNotesClient(httpClient *internalhttp.Client) *NotesClient {
	return &NotesClient{newResourceClient[clio.Note](httpClient, "notes", "note")}
}
