package usecase_test

import (
	"group-chat-app/dto/req"
	"group-chat-app/enum"
	apperrors "group-chat-app/errors"
	"time"
)

func (s *UsecaseSuite) TestCreateMessage_UnknownRoomWritesNothing() {
	alice := s.register("alice@mail.com", enum.RoleMember)

	_, err := s.message.CreateMessage(s.ctx, &req.MessageRequest{
		Text:       "hello",
		Timestamp:  noon,
		UserID:     alice.ID,
		ChatRoomID: "unknown-room",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, apperrors.ErrNotFound)

	messages, err := s.message.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(messages)
}

func (s *UsecaseSuite) TestCreateMessage_UnknownAuthor() {
	general := s.room("General")

	_, err := s.message.CreateMessage(s.ctx, &req.MessageRequest{
		Text:       "hello",
		UserID:     "unknown-user",
		ChatRoomID: general.ID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestCreateMessage_RequiresText() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")

	_, err := s.message.CreateMessage(s.ctx, &req.MessageRequest{UserID: alice.ID, ChatRoomID: general.ID})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestCreateMessage_DefaultsTimestamp() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")

	message := s.post(alice, general, "hello", time.Time{})

	s.False(message.Timestamp.IsZero())
	s.WithinDuration(time.Now(), message.Timestamp, time.Minute)
}

func (s *UsecaseSuite) TestListByRoom() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")
	random := s.room("Random")
	first := s.post(alice, general, "one", noon)
	second := s.post(alice, general, "two", noon.Add(time.Second))
	s.post(alice, random, "elsewhere", noon)

	messages, err := s.message.ListByRoom(s.ctx, general.ID)
	s.Require().NoError(err)
	s.Require().Len(messages, 2)
	s.Equal(first.ID, messages[0].ID)
	s.Equal(second.ID, messages[1].ID)

	_, err = s.message.ListByRoom(s.ctx, "unknown-room")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestLastInRoom_NewestTimestampWins() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")
	s.post(alice, general, "late", noon.Add(time.Hour))
	s.post(alice, general, "early", noon)

	last, err := s.message.LastInRoom(s.ctx, general.ID)
	s.Require().NoError(err)
	s.Equal("late", last.Text)
}

func (s *UsecaseSuite) TestLastInRoom_TieGoesToNewestMessage() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")
	s.post(alice, general, "first", noon)
	second := s.post(alice, general, "second", noon)

	last, err := s.message.LastInRoom(s.ctx, general.ID)
	s.Require().NoError(err)
	s.Equal(second.ID, last.ID)
}

func (s *UsecaseSuite) TestLastInRoom_EmptyRoom() {
	general := s.room("General")

	_, err := s.message.LastInRoom(s.ctx, general.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestDeleteMessageByID() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")
	message := s.post(alice, general, "hello", noon)

	s.Require().NoError(s.message.DeleteByID(s.ctx, message.ID))
	s.ErrorIs(s.message.DeleteByID(s.ctx, message.ID), apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestDeleteAllInRoom() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")
	random := s.room("Random")
	s.post(alice, general, "one", noon)
	s.post(alice, general, "two", noon)
	kept := s.post(alice, random, "three", noon)

	s.Require().NoError(s.message.DeleteAllInRoom(s.ctx, general.ID))

	messages, err := s.message.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)
	s.Equal(kept.ID, messages[0].ID)

	s.ErrorIs(s.message.DeleteAllInRoom(s.ctx, "unknown-room"), apperrors.ErrNotFound)
}
