package service

import (
	"learnsphere_backend/internal/model"
	"learnsphere_backend/internal/repository"
	"learnsphere_backend/internal/scoring"
	"mime/multipart"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

// ScoringProfile 把用户记录归一化为评分引擎的画像输入。
// 未完成入学测评的用户没有可用画像，返回 nil 走推荐降级路径。
func ScoringProfile(user *model.User) *scoring.Profile {
	if user == nil || !user.Assessed {
		return nil
	}
	return &scoring.Profile{
		MathLevel:        scoring.ParseLevel(user.MathLevel),
		ProgrammingLevel: scoring.ParseLevel(user.ProgrammingLevel),
		PreferredDomain:  user.PreferredDomain,
	}
}

type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"max=100"`
	PreferredDomain string `json:"preferredDomain" binding:"max=50"`
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PreferredDomain != "" {
		user.PreferredDomain = req.PreferredDomain
	}

	return user, s.UserRepo.Update(user)
}

func (s *UserService) UploadAvatar(userID uint, file *multipart.FileHeader) (string, error) {
	url, err := s.Storage.UploadAvatar(userID, file)
	if err != nil {
		return "", err
	}
	return url, s.UserRepo.UpdateAvatar(userID, url)
}
