package usecase_test

import (
	"errors"
	"gorm.io/gorm"
	"group-chat-app/entity"
	"group-chat-app/enum"
	apperrors "group-chat-app/errors"
	"group-chat-app/security"
)

func (s *UsecaseSuite) TestCreateUser_DefaultsToMember() {
	user, err := s.user.CreateUser(s.ctx, &entity.User{FirstName: "Bob", LastName: "B", Email: "bob@mail.com", Password: "hash"})
	s.Require().NoError(err)
	s.Equal(enum.RoleMember, user.Role)

	stored, err := s.user.GetUserByEmail(s.ctx, "bob@mail.com")
	s.Require().NoError(err)
	s.Equal(user.ID, stored.ID)
	s.Equal(enum.RoleMember, stored.Role)
}

func (s *UsecaseSuite) TestDeleteByID_ProtectsAdmin() {
	admin := s.register("admin@mail.com", enum.RoleAdmin)
	general := s.room("General")
	s.join(general, admin)
	s.post(admin, general, "welcome", noon)

	outcome, err := s.user.DeleteByID(s.ctx, admin.ID)
	s.Require().NoError(err)
	s.Equal(enum.SkippedAdminProtected, outcome)

	stored, err := s.user.GetUserByID(s.ctx, admin.ID)
	s.Require().NoError(err)
	s.Equal(enum.RoleAdmin, stored.Role)
	s.Equal([]string{"admin@mail.com"}, s.memberEmails(general))
	messages, err := s.message.ListByRoom(s.ctx, general.ID)
	s.Require().NoError(err)
	s.Len(messages, 1)
}

func (s *UsecaseSuite) TestDeleteByID_CascadesToAssociatedData() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	bob := s.register("bob@mail.com", enum.RoleMember)
	general := s.room("General")
	random := s.room("Random")
	s.join(general, alice, bob)
	s.join(random, bob)
	kept := s.post(alice, general, "from alice", noon)
	s.post(bob, general, "from bob", noon)
	s.post(bob, random, "also bob", noon)

	outcome, err := s.user.DeleteByID(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Equal(enum.Deleted, outcome)

	_, err = s.user.GetUserByID(s.ctx, bob.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Equal([]string{"alice@mail.com"}, s.memberEmails(general))
	s.Empty(s.memberEmails(random))

	messages, err := s.message.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)
	s.Equal(kept.ID, messages[0].ID)
}

func (s *UsecaseSuite) TestDeleteByID_Unknown() {
	outcome, err := s.user.DeleteByID(s.ctx, "unknown-user")
	s.Require().NoError(err)
	s.Equal(enum.NotFound, outcome)
}

func (s *UsecaseSuite) TestDeleteByEmail() {
	s.register("admin@mail.com", enum.RoleAdmin)
	s.register("alice@mail.com", enum.RoleMember)

	outcome, err := s.user.DeleteByEmail(s.ctx, "admin@mail.com")
	s.Require().NoError(err)
	s.Equal(enum.SkippedAdminProtected, outcome)

	outcome, err = s.user.DeleteByEmail(s.ctx, "alice@mail.com")
	s.Require().NoError(err)
	s.Equal(enum.Deleted, outcome)

	outcome, err = s.user.DeleteByEmail(s.ctx, "alice@mail.com")
	s.Require().NoError(err)
	s.Equal(enum.NotFound, outcome)
}

func (s *UsecaseSuite) TestDeleteAssociated_KeepsUserAndOthers() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	bob := s.register("bob@mail.com", enum.RoleMember)
	general := s.room("General")
	s.join(general, alice, bob)
	kept := s.post(alice, general, "from alice", noon)
	s.post(bob, general, "from bob", noon)

	s.Require().NoError(s.user.DeleteAssociated(s.ctx, bob.ID))

	_, err := s.user.GetUserByID(s.ctx, bob.ID)
	s.NoError(err)
	memberships, err := s.membershipRepository.FindByUserID(s.ctx, s.db, bob.ID)
	s.Require().NoError(err)
	s.Empty(memberships)
	s.Equal([]string{"alice@mail.com"}, s.memberEmails(general))

	messages, err := s.message.ListByRoom(s.ctx, general.ID)
	s.Require().NoError(err)
	s.Require().Len(messages, 1)
	s.Equal(kept.ID, messages[0].ID)
}

func (s *UsecaseSuite) TestDeleteAssociated_UnknownUser() {
	s.ErrorIs(s.user.DeleteAssociated(s.ctx, "unknown-user"), apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestDeleteAllUsers_KeepsAdmin() {
	admin := s.register("admin@mail.com", enum.RoleAdmin)
	alice := s.register("alice@mail.com", enum.RoleMember)
	bob := s.register("bob@mail.com", enum.RoleMember)
	general := s.room("General")
	s.join(general, admin, alice, bob)
	s.post(alice, general, "hello", noon)

	deleted, skipped, err := s.user.DeleteAllUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, deleted)
	s.Equal(1, skipped)

	users, err := s.user.GetAllUser(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(admin.ID, users[0].ID)
	s.Equal([]string{"admin@mail.com"}, s.memberEmails(general))

	messages, err := s.message.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(messages)
}

func (s *UsecaseSuite) TestDeleteAdmin_RequiresAdminCaller() {
	admin := s.register("admin@mail.com", enum.RoleAdmin)
	alice := s.register("alice@mail.com", enum.RoleMember)

	_, err := s.user.DeleteAdmin(s.ctx, security.Caller{UserID: alice.ID, Email: alice.Email, Role: enum.RoleMember}, admin.Email)
	s.ErrorIs(err, apperrors.ErrAuthorization)

	_, err = s.user.GetUserByID(s.ctx, admin.ID)
	s.NoError(err)
}

func (s *UsecaseSuite) TestDeleteAdmin_ByAdmin() {
	admin := s.register("admin@mail.com", enum.RoleAdmin)
	general := s.room("General")
	s.join(general, admin)
	s.post(admin, general, "bye", noon)
	caller := security.Caller{UserID: admin.ID, Email: admin.Email, Role: enum.RoleAdmin}

	outcome, err := s.user.DeleteAdmin(s.ctx, caller, admin.Email)
	s.Require().NoError(err)
	s.Equal(enum.Deleted, outcome)

	_, err = s.user.GetUserByID(s.ctx, admin.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Empty(s.memberEmails(general))

	outcome, err = s.user.DeleteAdmin(s.ctx, caller, admin.Email)
	s.Require().NoError(err)
	s.Equal(enum.NotFound, outcome)
}

func (s *UsecaseSuite) TestDeleteByID_RollsBackWhenPurgeFails() {
	alice := s.register("alice@mail.com", enum.RoleMember)
	general := s.room("General")
	random := s.room("Random")
	s.join(general, alice)
	s.join(random, alice)
	message := s.post(alice, general, "hello", noon)

	purgeFailure := errors.New("message purge failed")
	s.Require().NoError(s.db.Callback().Delete().Before("gorm:delete").Register("test:fail_message_purge", func(db *gorm.DB) {
		if db.Statement.Table == "t_message" {
			_ = db.AddError(purgeFailure)
		}
	}))

	outcome, err := s.user.DeleteByID(s.ctx, alice.ID)
	s.ErrorIs(err, apperrors.ErrConsistencyHazard)
	s.ErrorIs(err, purgeFailure)
	s.Empty(outcome)

	_, err = s.user.GetUserByID(s.ctx, alice.ID)
	s.NoError(err)
	s.Equal([]string{"alice@mail.com"}, s.memberEmails(general))
	s.Equal([]string{"alice@mail.com"}, s.memberEmails(random))
	_, err = s.message.GetByID(s.ctx, message.ID)
	s.NoError(err)
}

func (s *UsecaseSuite) TestDeleteByEmail_IgnoresCase() {
	s.register("Alice@Mail.com", enum.RoleMember)

	stored, err := s.user.GetUserByEmail(s.ctx, " ALICE@mail.com")
	s.Require().NoError(err)
	s.Equal("alice@mail.com", stored.Email)

	outcome, err := s.user.DeleteByEmail(s.ctx, "Alice@Mail.com")
	s.Require().NoError(err)
	s.Equal(enum.Deleted, outcome)

	_, err = s.user.GetUserByID(s.ctx, stored.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UsecaseSuite) TestDeleteAdmin_IgnoresCase() {
	admin := s.register("admin@mail.com", enum.RoleAdmin)
	caller := security.Caller{UserID: admin.ID, Email: admin.Email, Role: enum.RoleAdmin}

	outcome, err := s.user.DeleteAdmin(s.ctx, caller, "Admin@Mail.com")
	s.Require().NoError(err)
	s.Equal(enum.Deleted, outcome)
}

func (s *UsecaseSuite) TestCountAdmins() {
	s.register("admin@mail.com", enum.RoleAdmin)
	s.register("alice@mail.com", enum.RoleMember)

	count, err := s.user.CountAdmins(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(1, count)
}
