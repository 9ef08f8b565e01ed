package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campus-aid/campus-aid-api/schema"
)

var (
	testRequester = schema.Identity{ID: "s100", Name: "Rita", Email: "rita@campus.edu"}
	testHelper    = schema.Identity{ID: "s200", Name: "Hugo", Email: "hugo@campus.edu"}
	testStranger  = schema.Identity{ID: "s300", Name: "Sam", Email: "sam@campus.edu"}
)

type HelpRequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database

	acceptedHelpID primitive.ObjectID
}

func NewHelpRequestTestSuite(connURI, dbName string) *HelpRequestTestSuite {
	return &HelpRequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *HelpRequestTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *HelpRequestTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	s.acceptedHelpID = primitive.NewObjectID()
	now := time.Now().UTC()

	if _, err := s.testDatabase.Collection(schema.HelpRequestCollection).InsertMany(ctx, []interface{}{
		schema.HelpRequest{
			ID:             s.acceptedHelpID,
			Title:          "Borrow a calculator",
			Category:       schema.HelpCategoryAcademic,
			RequesterID:    testRequester.ID,
			RequesterName:  testRequester.Name,
			RequesterEmail: testRequester.Email,
			Status:         schema.HelpStatusAccepted,
			AcceptedBy:     testHelper.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *HelpRequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *HelpRequestTestSuite) TestCreateAndGetHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "  Need a phone charger ",
		Location: "Dorm B",
		Category: schema.HelpCategoryOther,
	})
	s.NoError(err)
	s.Equal("Need a phone charger", created.Title)
	s.Equal(schema.HelpStatusActive, created.Status)
	s.Equal(testRequester.ID, created.RequesterID)
	s.False(created.ID.IsZero())

	fetched, err := store.GetHelpRequest(created.ID.Hex())
	s.NoError(err)
	s.Equal(created.Title, fetched.Title)
	s.Equal(created.RequesterID, fetched.RequesterID)
}

func (s *HelpRequestTestSuite) TestCreateHelpRequestRejectsBadContent() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "   ",
		Category: schema.HelpCategoryOther,
	})
	s.Equal(ErrInvalidHelpRequest, err)

	_, err = store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "Need a ride",
		Category: "gardening",
	})
	s.Equal(ErrInvalidHelpRequest, err)
}

func (s *HelpRequestTestSuite) TestGetHelpRequestNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetHelpRequest(primitive.NewObjectID().Hex())
	s.Equal(ErrHelpRequestNotFound, err)

	_, err = store.GetHelpRequest("not-an-object-id")
	s.Equal(ErrHelpRequestNotFound, err)
}

func (s *HelpRequestTestSuite) TestListActiveHelpRequestsFiltersByCategory() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "Ride to the station",
		Category: schema.HelpCategoryTransport,
	})
	s.NoError(err)

	helps, err := store.ListActiveHelpRequests(schema.HelpCategoryTransport)
	s.NoError(err)
	s.Len(helps, 1)
	s.Equal("Ride to the station", helps[0].Title)

	// the accepted fixture never shows up in the active listing
	for _, h := range helps {
		s.Equal(schema.HelpStatusActive, h.Status)
	}

	helps, err = store.ListActiveHelpRequests(schema.HelpCategoryMedical)
	s.NoError(err)
	s.Len(helps, 0)
}

func (s *HelpRequestTestSuite) TestListActiveHelpRequestsDropsMalformedDocuments() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// a document missing its title, as a broken writer could leave behind
	_, err := s.testDatabase.Collection(schema.HelpRequestCollection).InsertOne(context.Background(), bson.M{
		"category":     schema.HelpCategoryMedical,
		"requester_id": testRequester.ID,
		"status":       schema.HelpStatusActive,
		"created_at":   time.Now().UTC(),
	})
	s.NoError(err)

	helps, err := store.ListActiveHelpRequests(schema.HelpCategoryMedical)
	s.NoError(err)
	s.Len(helps, 0)
}

func (s *HelpRequestTestSuite) TestSetHelpRequestAccepted() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "Proofread my essay",
		Category: schema.HelpCategoryAcademic,
	})
	s.NoError(err)

	err = store.SetHelpRequestAccepted(created.ID.Hex(), testHelper, "chat-1")
	s.NoError(err)

	fetched, err := store.GetHelpRequest(created.ID.Hex())
	s.NoError(err)
	s.Equal(schema.HelpStatusAccepted, fetched.Status)
	s.Equal(testHelper.ID, fetched.AcceptedBy)
	s.Equal("chat-1", fetched.ChatID)

	// the second accept loses the conditional update
	err = store.SetHelpRequestAccepted(created.ID.Hex(), testStranger, "chat-2")
	s.Equal(ErrHelpRequestNotOpen, err)

	fetched, err = store.GetHelpRequest(created.ID.Hex())
	s.NoError(err)
	s.Equal(testHelper.ID, fetched.AcceptedBy)
	s.Equal("chat-1", fetched.ChatID)
}

func (s *HelpRequestTestSuite) TestSetHelpRequestAcceptedRejectsRequester() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "Carry boxes upstairs",
		Category: schema.HelpCategoryOther,
	})
	s.NoError(err)

	err = store.SetHelpRequestAccepted(created.ID.Hex(), testRequester, "chat-self")
	s.Equal(ErrHelpRequestNotOpen, err)
}

func (s *HelpRequestTestSuite) TestSetHelpRequestFinalized() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.SetHelpRequestFinalized(s.acceptedHelpID.Hex())
	s.NoError(err)

	fetched, err := store.GetHelpRequest(s.acceptedHelpID.Hex())
	s.NoError(err)
	s.Equal(schema.HelpStatusFinalized, fetched.Status)

	// finalizing twice is a no-op for the repair pass
	err = store.SetHelpRequestFinalized(s.acceptedHelpID.Hex())
	s.NoError(err)
}

func (s *HelpRequestTestSuite) TestSetHelpRequestFinalizedFromActive() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "Need a converter plug",
		Category: schema.HelpCategoryOther,
	})
	s.NoError(err)

	err = store.SetHelpRequestFinalized(created.ID.Hex())
	s.Equal(ErrHelpRequestNotOpen, err)
}

func (s *HelpRequestTestSuite) TestDeleteHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateHelpRequest(testRequester, HelpRequestParams{
		Title:    "Spare umbrella",
		Category: schema.HelpCategoryOther,
	})
	s.NoError(err)

	// someone else's delete looks like not-found
	err = store.DeleteHelpRequest(created.ID.Hex(), testStranger.ID)
	s.Equal(ErrHelpRequestNotFound, err)

	err = store.DeleteHelpRequest(created.ID.Hex(), testRequester.ID)
	s.NoError(err)

	_, err = store.GetHelpRequest(created.ID.Hex())
	s.Equal(ErrHelpRequestNotFound, err)
}

func TestHelpRequestTestSuite(t *testing.T) {
	suite.Run(t, NewHelpRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
