package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/repository"
	"stackit/internal/microservices/websocket"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	questionID = "0c8e0d6a-3d0e-4a3e-8f3b-6f0e5c1b9a01"
	answerID   = "7a1f2b3c-4d5e-4f60-8a7b-9c0d1e2f3a4b"
	ownerID    = "11111111-1111-4111-8111-111111111111"
	otherID    = "22222222-2222-4222-8222-222222222222"
)

type AnswerServiceSuite struct {
	suite.Suite
	ctx           context.Context
	answers       *MockAnswerRepository
	questions     *MockQuestionRepository
	notifications *MockNotificationRepository
	notifier      *recordingNotifier
	service       *answerService
	fixedNow      time.Time
}

func (s *AnswerServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.answers = new(MockAnswerRepository)
	s.questions = new(MockQuestionRepository)
	s.notifications = new(MockNotificationRepository)
	s.notifier = &recordingNotifier{}
	s.fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc := NewAnswerService(s.answers, s.questions, s.notifications, s.notifier, nil).(*answerService)
	svc.now = func() time.Time { return s.fixedNow }
	s.service = svc
}

func (s *AnswerServiceSuite) expectAnswerCreate() {
	s.answers.On("Create", s.ctx, mock.AnythingOfType("*models.Answer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Answer).ID = answerID
		}).
		Return(nil)
}

func (s *AnswerServiceSuite) TestPost_NotifiesQuestionAuthor() {
	content := strings.Repeat("a", 150) + strings.Repeat("b", 100)
	s.questions.On("GetByID", s.ctx, questionID).Return(&models.Question{ID: questionID, AuthorID: ownerID}, nil)
	s.expectAnswerCreate()
	s.notifications.On("Create", s.ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == ownerID &&
			n.Type == "new_answer" &&
			*n.QuestionID == questionID &&
			*n.AnswerID == answerID &&
			len(n.Message) == StoredMessageLength
	})).Return(nil)

	answer, err := s.service.Post(s.ctx, otherID, questionID, content)

	s.Require().NoError(err)
	s.Equal(answerID, answer.ID)

	events := s.notifier.all()
	s.Require().Len(events, 1)
	s.Equal(ownerID, events[0].userID)

	event, ok := events[0].event.(*websocket.NewAnswerEvent)
	s.Require().True(ok)
	s.Equal(websocket.EventNewAnswer, event.Type)
	s.Equal(questionID, event.QuestionID)
	s.Equal(answerID, event.AnswerID)
	s.Equal(strings.Repeat("a", 100), event.Message)
	s.Equal("2026-03-01T12:00:00Z", event.Timestamp)
	s.notifications.AssertExpectations(s.T())
}

func (s *AnswerServiceSuite) TestPost_SelfAnswerIsSilent() {
	s.questions.On("GetByID", s.ctx, questionID).Return(&models.Question{ID: questionID, AuthorID: ownerID}, nil)
	s.expectAnswerCreate()

	_, err := s.service.Post(s.ctx, ownerID, questionID, "my own answer")

	s.Require().NoError(err)
	s.Empty(s.notifier.all())
	s.notifications.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AnswerServiceSuite) TestPost_PersistFailureStillDelivers() {
	s.questions.On("GetByID", s.ctx, questionID).Return(&models.Question{ID: questionID, AuthorID: ownerID}, nil)
	s.expectAnswerCreate()
	s.notifications.On("Create", s.ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := s.service.Post(s.ctx, otherID, questionID, "hello")

	s.Require().NoError(err)
	s.Len(s.notifier.all(), 1)
}

func (s *AnswerServiceSuite) TestPost_QuestionMissing() {
	s.questions.On("GetByID", s.ctx, questionID).Return(nil, repository.ErrNotFound)

	_, err := s.service.Post(s.ctx, otherID, questionID, "hello")

	s.ErrorIs(err, ErrQuestionNotFound)
	s.Empty(s.notifier.all())
}

func (s *AnswerServiceSuite) TestPost_InvalidInput() {
	_, err := s.service.Post(s.ctx, otherID, "not-a-uuid", "hello")
	s.ErrorIs(err, ErrInvalidID)

	_, err = s.service.Post(s.ctx, otherID, questionID, "   ")
	s.ErrorIs(err, ErrEmptyField)
}

func (s *AnswerServiceSuite) TestVote() {
	s.answers.On("Vote", s.ctx, answerID, true).Return(nil).Once()
	s.NoError(s.service.Vote(s.ctx, answerID, 1))

	s.answers.On("Vote", s.ctx, answerID, false).Return(repository.ErrVoteLimit).Once()
	s.ErrorIs(s.service.Vote(s.ctx, answerID, -1), ErrVoteLimit)

	s.answers.On("Vote", s.ctx, answerID, true).Return(repository.ErrNotFound).Once()
	s.ErrorIs(s.service.Vote(s.ctx, answerID, 1), ErrAnswerNotFound)

	s.ErrorIs(s.service.Vote(s.ctx, answerID, 2), ErrInvalidVote)
	s.ErrorIs(s.service.Vote(s.ctx, "bad", 1), ErrInvalidID)
}

func (s *AnswerServiceSuite) TestAccept_OnlyQuestionAuthor() {
	s.answers.On("GetByID", s.ctx, answerID).Return(&models.Answer{ID: answerID, QuestionID: questionID}, nil)
	s.questions.On("GetByID", s.ctx, questionID).Return(&models.Question{ID: questionID, AuthorID: ownerID}, nil)
	s.answers.On("Accept", s.ctx, answerID).Return(nil).Once()

	s.ErrorIs(s.service.Accept(s.ctx, otherID, answerID), ErrForbidden)
	s.NoError(s.service.Accept(s.ctx, ownerID, answerID))
	s.answers.AssertNumberOfCalls(s.T(), "Accept", 1)
}

func (s *AnswerServiceSuite) TestAccept_AnswerMissing() {
	s.answers.On("GetByID", s.ctx, answerID).Return(nil, repository.ErrNotFound)

	s.ErrorIs(s.service.Accept(s.ctx, ownerID, answerID), ErrAnswerNotFound)
}

func TestAnswerServiceSuite(t *testing.T) {
	suite.Run(t, new(AnswerServiceSuite))
}
