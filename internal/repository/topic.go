package repository

import (
	"context"

	"debateapp/internal/models"
)

// TopicRepository provides access to the topics document.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	GetByID(ctx context.Context, id int) (*models.Topic, error)
	// Create assigns the next topic id and appends the topic.
	Create(ctx context.Context, topic *models.Topic) error
	// Remove deletes a topic by id. It exists only to compensate a failed
	// topic+debate dual write; the id counter is not rewound, so ids are
	// never reused.
	Remove(ctx context.Context, id int) error
	IncrementVotes(ctx context.Context, id int) (*models.Topic, error)
}

// topicDocument is the on-disk envelope of topics.json. LastID is the id
// counter; documents written before the counter existed migrate lazily via
// nextID.
type topicDocument struct {
	Topics []models.Topic `json:"topics"`
	LastID int            `json:"lastId,omitempty"`
}

func (d *topicDocument) nextID() int {
	if d.LastID == 0 {
		for _, t := range d.Topics {
			if t.ID > d.LastID {
				d.LastID = t.ID
			}
		}
	}
	d.LastID++
	return d.LastID
}

type fileTopicRepository struct {
	store *store
}

// NewTopicRepository creates a topic repository backed by topics.json under
// dataDir.
func NewTopicRepository(dataDir string) (TopicRepository, error) {
	s, err := newStore(dataDir, "topics.json", "topics")
	if err != nil {
		return nil, err
	}
	return &fileTopicRepository{store: s}, nil
}

func (r *fileTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc topicDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	if doc.Topics == nil {
		doc.Topics = []models.Topic{}
	}
	return doc.Topics, nil
}

func (r *fileTopicRepository) GetByID(ctx context.Context, id int) (*models.Topic, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc topicDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	for i := range doc.Topics {
		if doc.Topics[i].ID == id {
			topic := doc.Topics[i]
			return &topic, nil
		}
	}
	return nil, models.NewNotFoundError("Topic", id)
}

func (r *fileTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc topicDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	topic.ID = doc.nextID()
	doc.Topics = append(doc.Topics, *topic)
	if err := r.store.save(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *fileTopicRepository) Remove(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc topicDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	kept := doc.Topics[:0]
	for _, t := range doc.Topics {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(doc.Topics) {
		return models.NewNotFoundError("Topic", id)
	}
	doc.Topics = kept
	if err := r.store.save(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *fileTopicRepository) IncrementVotes(ctx context.Context, id int) (*models.Topic, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc topicDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	for i := range doc.Topics {
		if doc.Topics[i].ID == id {
			doc.Topics[i].Votes++
			if err := r.store.save(ctx, &doc); err != nil {
				return nil, models.NewStorageError(err)
			}
			topic := doc.Topics[i]
			return &topic, nil
		}
	}
	return nil, models.NewNotFoundError("Topic", id)
}
