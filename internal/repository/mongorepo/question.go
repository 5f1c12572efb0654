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

const questionsCollection = "questions"

type questionDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Question  string             `bson:"question"`
	AskedBy   string             `bson:"askedBy"`
	Answers   []model.Answer     `bson:"answers"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d questionDocument) toModel() *model.Question {
	question := &model.Question{
		ID:        d.ID.Hex(),
		Question:  d.Question,
		AskedBy:   d.AskedBy,
		Answers:   d.Answers,
		CreatedAt: d.CreatedAt,
	}
	if question.Answers == nil {
		question.Answers = []model.Answer{}
	}
	return question
}

type questionRepo struct {
	coll *mongo.Collection
}

func newQuestionRepo(db *mongo.Database) repository.Question {
	return &questionRepo{
		coll: db.Collection(questionsCollection),
	}
}

func (r *questionRepo) Create(ctx context.Context, question model.Question) (*model.Question, error) {
	doc := questionDocument{
		ID:        primitive.NewObjectID(),
		Question:  question.Question,
		AskedBy:   question.AskedBy,
		Answers:   []model.Answer{},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}

func (r *questionRepo) Find(ctx context.Context, limit int, offset int) ([]*model.Question, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []*model.Question{}
	for cursor.Next(ctx) {
		var doc questionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		questions = append(questions, doc.toModel())
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *questionRepo) AppendAnswer(ctx context.Context, id string, answer model.Answer) (*model.Question, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "answers", Value: answer}}}}

	var doc questionDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: objectID}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}
