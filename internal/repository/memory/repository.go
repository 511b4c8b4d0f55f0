package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/playoffpool/internal/models"
	"github.com/omarshaarawi/playoffpool/internal/roster"
)

type Repository struct {
	board       *models.Board
	directory   *roster.Directory
	directoryAt time.Time
	mu          sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

// SaveBoard replaces the published board. Readers holding the previous
// pointer keep a consistent snapshot.
func (r *Repository) SaveBoard(board *models.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board = board
}

func (r *Repository) GetBoard() *models.Board {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.board
}

func (r *Repository) SaveDirectory(dir *roster.Directory, fetchedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.directory = dir
	r.directoryAt = fetchedAt
}

func (r *Repository) GetDirectory() (*roster.Directory, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.directory, r.directoryAt
}
