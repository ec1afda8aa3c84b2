package usecase

import (
	"context"
	"errors"

	"practice-management-api/internal/converter"
	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/domain/entity"
	"practice-management-api/internal/domain/repository"
	"practice-management-api/pkg/hash"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("username or email already exists")
	// ErrUserHasRecords is returned when deleting a user that still owns
	// appointments, messages, records, prescriptions or billing rows.
	// Dependent data is never cascaded.
	ErrUserHasRecords = errors.New("user still owns dependent records")
)

type UserUsecase interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id int64) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashed, err := hash.Generate(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:  req.Username,
		Password:  hashed,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsDoctor:  req.IsDoctor,
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrUserConflict
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Password != "" {
		hashed, err := hash.Generate(req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashed
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.IsDoctor != nil {
		user.IsDoctor = *req.IsDoctor
	}

	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		if isDuplicateKeyError(err) {
			return nil, ErrUserConflict
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.userRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		if isForeignKeyError(err) {
			return ErrUserHasRecords
		}
		return err
	}
	if affectedRows == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
