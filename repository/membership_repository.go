package repository

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"group-chat-app/entity"
)

type MembershipRepository struct{}

func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{}
}

// Insert relies on the (user_id, chat_room_id) primary key. It reports false
// when the pair was already present.
func (repository MembershipRepository) Insert(ctx context.Context, db *gorm.DB, membership *entity.Membership) (bool, error) {
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(membership)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repository MembershipRepository) InsertAll(ctx context.Context, db *gorm.DB, memberships []entity.Membership) error {
	if len(memberships) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&memberships).Error
}

func (repository MembershipRepository) DeletePair(ctx context.Context, db *gorm.DB, chatRoomID, userID string) (int64, error) {
	result := db.WithContext(ctx).
		Where("chat_room_id = ? AND user_id = ?", chatRoomID, userID).
		Delete(&entity.Membership{})
	return result.RowsAffected, result.Error
}

func (repository MembershipRepository) DeleteByChatRoomID(ctx context.Context, db *gorm.DB, chatRoomID string) error {
	return db.WithContext(ctx).Where("chat_room_id = ?", chatRoomID).Delete(&entity.Membership{}).Error
}

func (repository MembershipRepository) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Where("1 = 1").Delete(&entity.Membership{}).Error
}

func (repository MembershipRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.Membership, error) {
	var memberships []entity.Membership
	err := db.WithContext(ctx).Where("user_id = ?", userID).Find(&memberships).Error
	return memberships, err
}

func (repository MembershipRepository) FindMembers(ctx context.Context, db *gorm.DB, chatRoomID string) ([]entity.User, error) {
	var users []entity.User
	db = db.WithContext(ctx)
	err := db.
		Where("id IN (?)", db.Model(&entity.Membership{}).Select("user_id").Where("chat_room_id = ?", chatRoomID)).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

func (repository MembershipRepository) FindNonMembers(ctx context.Context, db *gorm.DB, chatRoomID string) ([]entity.User, error) {
	var users []entity.User
	db = db.WithContext(ctx)
	err := db.
		Where("id NOT IN (?)", db.Model(&entity.Membership{}).Select("user_id").Where("chat_room_id = ?", chatRoomID)).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

// FindCoMembers returns every other user that shares at least one room with userID.
func (repository MembershipRepository) FindCoMembers(ctx context.Context, db *gorm.DB, userID string) ([]entity.User, error) {
	var users []entity.User
	db = db.WithContext(ctx)
	err := db.
		Where("id <> ?", userID).
		Where("id IN (?)", repository.coMemberIDs(db, userID)).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

func (repository MembershipRepository) FindNonCoMembers(ctx context.Context, db *gorm.DB, userID string) ([]entity.User, error) {
	var users []entity.User
	db = db.WithContext(ctx)
	err := db.
		Where("id <> ?", userID).
		Where("id NOT IN (?)", repository.coMemberIDs(db, userID)).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

func (repository MembershipRepository) coMemberIDs(db *gorm.DB, userID string) *gorm.DB {
	rooms := db.Model(&entity.Membership{}).Select("chat_room_id").Where("user_id = ?", userID)
	return db.Model(&entity.Membership{}).Select("user_id").Where("chat_room_id IN (?)", rooms)
}
