package repository

import (
	"context"
	"time"

	"debateapp/internal/models"
)

// DebateRepository provides access to the debates document. Comments live
// inline in their debate; there is no separate comments document.
type DebateRepository interface {
	List(ctx context.Context) ([]models.Debate, error)
	GetByID(ctx context.Context, id int) (*models.Debate, error)
	// Create assigns the next debate id and appends the debate.
	Create(ctx context.Context, debate *models.Debate) error
	// Remove deletes a debate by id without rewinding the id counter.
	Remove(ctx context.Context, id int) error
	// AddParticipant appends userID to the debate's participant set.
	// Joining twice is idempotent; the document is only rewritten when the
	// set actually changed.
	AddParticipant(ctx context.Context, debateID int, userID string) (*models.Debate, error)
	// AppendComment assigns the next sequence-local comment id and appends
	// the comment to the debate.
	AppendComment(ctx context.Context, debateID int, comment *models.Comment) error
	// RefreshStatuses recomputes every debate's status against the single
	// now and persists the document once if any status changed. Debates are
	// returned in creation order.
	RefreshStatuses(ctx context.Context, now time.Time) ([]models.Debate, error)
}

// debateDocument is the on-disk envelope of debates.json.
type debateDocument struct {
	Debates []models.Debate `json:"debates"`
	LastID  int             `json:"lastId,omitempty"`
}

func (d *debateDocument) nextID() int {
	if d.LastID == 0 {
		for _, deb := range d.Debates {
			if deb.ID > d.LastID {
				d.LastID = deb.ID
			}
		}
	}
	d.LastID++
	return d.LastID
}

// normalize ensures participant and comment slices marshal as [] rather
// than null, including for documents written by other tools.
func (d *debateDocument) normalize() {
	if d.Debates == nil {
		d.Debates = []models.Debate{}
	}
	for i := range d.Debates {
		if d.Debates[i].Participants == nil {
			d.Debates[i].Participants = []string{}
		}
		if d.Debates[i].Comments == nil {
			d.Debates[i].Comments = []models.Comment{}
		}
	}
}

func (d *debateDocument) find(id int) *models.Debate {
	for i := range d.Debates {
		if d.Debates[i].ID == id {
			return &d.Debates[i]
		}
	}
	return nil
}

type fileDebateRepository struct {
	store *store
}

// NewDebateRepository creates a debate repository backed by debates.json
// under dataDir.
func NewDebateRepository(dataDir string) (DebateRepository, error) {
	s, err := newStore(dataDir, "debates.json", "debates")
	if err != nil {
		return nil, err
	}
	return &fileDebateRepository{store: s}, nil
}

func (r *fileDebateRepository) List(ctx context.Context) ([]models.Debate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	doc.normalize()
	return doc.Debates, nil
}

func (r *fileDebateRepository) GetByID(ctx context.Context, id int) (*models.Debate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	doc.normalize()
	if debate := doc.find(id); debate != nil {
		copied := *debate
		return &copied, nil
	}
	return nil, models.NewNotFoundError("Debate", id)
}

func (r *fileDebateRepository) Create(ctx context.Context, debate *models.Debate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	doc.normalize()
	debate.ID = doc.nextID()
	if debate.Participants == nil {
		debate.Participants = []string{}
	}
	if debate.Comments == nil {
		debate.Comments = []models.Comment{}
	}
	doc.Debates = append(doc.Debates, *debate)
	if err := r.store.save(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *fileDebateRepository) Remove(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	kept := doc.Debates[:0]
	for _, d := range doc.Debates {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(doc.Debates) {
		return models.NewNotFoundError("Debate", id)
	}
	doc.Debates = kept
	if err := r.store.save(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *fileDebateRepository) AddParticipant(ctx context.Context, debateID int, userID string) (*models.Debate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	doc.normalize()
	debate := doc.find(debateID)
	if debate == nil {
		return nil, models.NewNotFoundError("Debate", debateID)
	}
	if !debate.HasParticipant(userID) {
		debate.Participants = append(debate.Participants, userID)
		if err := r.store.save(ctx, &doc); err != nil {
			return nil, models.NewStorageError(err)
		}
	}
	copied := *debate
	return &copied, nil
}

func (r *fileDebateRepository) AppendComment(ctx context.Context, debateID int, comment *models.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	doc.normalize()
	debate := doc.find(debateID)
	if debate == nil {
		return models.NewNotFoundError("Debate", debateID)
	}
	if debate.LastCommentID == 0 {
		for _, c := range debate.Comments {
			if c.ID > debate.LastCommentID {
				debate.LastCommentID = c.ID
			}
		}
	}
	debate.LastCommentID++
	comment.ID = debate.LastCommentID
	debate.Comments = append(debate.Comments, *comment)
	if err := r.store.save(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *fileDebateRepository) RefreshStatuses(ctx context.Context, now time.Time) ([]models.Debate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc debateDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	doc.normalize()

	changed := false
	for i := range doc.Debates {
		status := models.DeriveStatus(now, doc.Debates[i].StartDate, doc.Debates[i].EndDate)
		if doc.Debates[i].Status != status {
			doc.Debates[i].Status = status
			changed = true
		}
	}
	if changed {
		if err := r.store.save(ctx, &doc); err != nil {
			return nil, models.NewStorageError(err)
		}
	}
	return doc.Debates, nil
}
