package mongorepo

import (
	"context"
	"errors"
	"time"

	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/KannamTejaswi311/NutriTrack/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const postsCollection = "posts"

type postDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Type           string             `bson:"type"`
	Author         string             `bson:"author"`
	Content        string             `bson:"content"`
	Image          *string            `bson:"image"`
	Audio          *string            `bson:"audio"`
	Tags           []string           `bson:"tags"`
	Likes          int64              `bson:"likes"`
	Replies        int64              `bson:"replies"`
	Flagged        bool               `bson:"flagged"`
	IsHealthWorker bool               `bson:"isHealthWorker"`
	Comments       []model.Comment    `bson:"comments"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d postDocument) toModel() *model.Post {
	post := &model.Post{
		ID:             d.ID.Hex(),
		Type:           d.Type,
		Author:         d.Author,
		Content:        d.Content,
		Image:          d.Image,
		Audio:          d.Audio,
		Tags:           d.Tags,
		Likes:          d.Likes,
		Replies:        d.Replies,
		Flagged:        d.Flagged,
		IsHealthWorker: d.IsHealthWorker,
		Comments:       d.Comments,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}
	return post
}

type postRepo struct {
	coll *mongo.Collection
}

func newPostRepo(db *mongo.Database) repository.Post {
	return &postRepo{
		coll: db.Collection(postsCollection),
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	// Mongo stores milliseconds.
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := postDocument{
		ID:             primitive.NewObjectID(),
		Type:           post.Type,
		Author:         post.Author,
		Content:        post.Content,
		Image:          post.Image,
		Audio:          post.Audio,
		Tags:           post.Tags,
		IsHealthWorker: post.IsHealthWorker,
		Comments:       []model.Comment{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}

func (r *postRepo) Find(ctx context.Context, filter model.PostFilter) ([]*model.Post, error) {
	query := bson.D{}
	if filter.Type != "" {
		query = append(query, bson.E{Key: "type", Value: filter.Type})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(filter.Limit)).
		SetSkip(int64(filter.Offset))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []*model.Post{}
	for cursor.Next(ctx) {
		var doc postDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		posts = append(posts, doc.toModel())
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *postRepo) IncrLikes(ctx context.Context, id string) (*model.Post, error) {
	return r.update(ctx, id, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "likes", Value: 1}}},
		{Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}},
	})
}

func (r *postRepo) IncrReplies(ctx context.Context, id string) (*model.Post, error) {
	return r.update(ctx, id, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "replies", Value: 1}}},
		{Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}},
	})
}

func (r *postRepo) AppendComment(ctx context.Context, id string, comment model.Comment) (*model.Post, error) {
	return r.update(ctx, id, bson.D{
		{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}},
		{Key: "$inc", Value: bson.D{{Key: "replies", Value: 1}}},
		{Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}},
	})
}

// ToggleFlag negates the stored value server side with a pipeline update, so
// two concurrent toggles cancel out instead of racing on a read.
func (r *postRepo) ToggleFlag(ctx context.Context, id string) (*model.Post, error) {
	return r.update(ctx, id, mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "flagged", Value: bson.D{{Key: "$not", Value: bson.A{"$flagged"}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	})
}

func (r *postRepo) update(ctx context.Context, id string, update interface{}) (*model.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc postDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: objectID}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}
