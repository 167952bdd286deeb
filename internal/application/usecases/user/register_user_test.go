// Тесты регистрации и входа.
package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/roadshare/roadshare/internal/application/dtos"
	"github.com/roadshare/roadshare/internal/application/usecases/user"
	"github.com/roadshare/roadshare/internal/domain/entities"
	domainErrors "github.com/roadshare/roadshare/internal/domain/errors"
)

func newTestUser(t *testing.T, email string) *entities.User {
	t.Helper()
	u, err := entities.NewUser(email, "hashed:secret123", "Jean Dupont", "+33600000000")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

// TestRegisterUser_Success тестирует успешную регистрацию.
func TestRegisterUser_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	hasher := &MockPasswordHasher{}
	mailer := &MockMailer{}

	useCase := user.NewRegisterUserUseCase(userRepo, hasher, mailer, nil)

	result, err := useCase.Execute(context.Background(), dtos.RegisterUserCommand{
		Email:    "jean@example.com",
		Password: "secret123",
		FullName: "Jean Dupont",
		Phone:    "+33600000000",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.User.Email != "jean@example.com" {
		t.Errorf("Expected email in DTO, got %s", result.User.Email)
	}
	if userRepo.CreateCalls != 1 {
		t.Errorf("Expected 1 Create call, got %d", userRepo.CreateCalls)
	}
	if len(mailer.WelcomeSent) != 1 || mailer.WelcomeSent[0] != "jean@example.com" {
		t.Error("Expected welcome email to be sent")
	}
}

// TestRegisterUser_EmailAlreadyExists тестирует конфликт email.
func TestRegisterUser_EmailAlreadyExists(t *testing.T) {
	userRepo := &MockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	useCase := user.NewRegisterUserUseCase(userRepo, &MockPasswordHasher{}, &MockMailer{}, nil)

	_, err := useCase.Execute(context.Background(), dtos.RegisterUserCommand{
		Email:    "jean@example.com",
		Password: "secret123",
		FullName: "Jean Dupont",
	})

	if domainErrors.CodeOf(err) != domainErrors.CodeEmailAlreadyExists {
		t.Fatalf("Expected EMAIL_ALREADY_EXISTS, got %v", err)
	}
	if userRepo.CreateCalls != 0 {
		t.Errorf("Expected no Create call, got %d", userRepo.CreateCalls)
	}
}

// TestRegisterUser_PasswordNeverStoredPlain проверяет, что в репозиторий
// попадает только хэш пароля.
func TestRegisterUser_PasswordNeverStoredPlain(t *testing.T) {
	var stored *entities.User
	userRepo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, u *entities.User) error {
			stored = u
			return nil
		},
	}

	useCase := user.NewRegisterUserUseCase(userRepo, &MockPasswordHasher{}, &MockMailer{}, nil)

	_, err := useCase.Execute(context.Background(), dtos.RegisterUserCommand{
		Email:    "jean@example.com",
		Password: "secret123",
		FullName: "Jean Dupont",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stored == nil {
		t.Fatal("Expected user to be persisted")
	}
	if stored.PasswordHash() == "secret123" {
		t.Error("Password stored in plain text")
	}
	if stored.PasswordHash() != "hashed:secret123" {
		t.Errorf("Expected hashed password, got %s", stored.PasswordHash())
	}
}

// TestRegisterUser_MailFailureDoesNotFail: сбой почты не ломает регистрацию.
func TestRegisterUser_MailFailureDoesNotFail(t *testing.T) {
	mailer := &MockMailer{FailWelcome: errors.New("smtp down")}

	useCase := user.NewRegisterUserUseCase(&MockUserRepository{}, &MockPasswordHasher{}, mailer, nil)

	_, err := useCase.Execute(context.Background(), dtos.RegisterUserCommand{
		Email:    "jean@example.com",
		Password: "secret123",
		FullName: "Jean Dupont",
	})
	if err != nil {
		t.Fatalf("Expected registration to succeed despite mail failure, got %v", err)
	}
}

// TestLogin_Success тестирует выпуск токена с корректными claims.
func TestLogin_Success(t *testing.T) {
	u := newTestUser(t, "jean@example.com")
	userRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entities.User, error) {
			return u, nil
		},
	}
	tokens := &MockTokenService{}

	useCase := user.NewLoginUseCase(userRepo, &MockPasswordHasher{}, tokens, nil)

	result, err := useCase.Execute(context.Background(), dtos.LoginCommand{
		Email:    "jean@example.com",
		Password: "secret123",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Token != "test-token" {
		t.Errorf("Expected token, got %s", result.Token)
	}
	if tokens.LastClaims == nil || tokens.LastClaims.UserID != u.ID().String() {
		t.Error("Expected claims to carry the user ID")
	}
}

// TestLogin_WrongPassword: неверный пароль даёт INVALID_CREDENTIALS.
func TestLogin_WrongPassword(t *testing.T) {
	u := newTestUser(t, "jean@example.com")
	userRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entities.User, error) {
			return u, nil
		},
	}

	useCase := user.NewLoginUseCase(userRepo, &MockPasswordHasher{}, &MockTokenService{}, nil)

	_, err := useCase.Execute(context.Background(), dtos.LoginCommand{
		Email:    "jean@example.com",
		Password: "wrong-password",
	})

	if domainErrors.CodeOf(err) != domainErrors.CodeInvalidCredentials {
		t.Fatalf("Expected INVALID_CREDENTIALS, got %v", err)
	}
}

// TestLogin_UnknownEmail возвращает ту же ошибку, что и неверный пароль,
// чтобы нельзя было прощупать базу адресов.
func TestLogin_UnknownEmail(t *testing.T) {
	useCase := user.NewLoginUseCase(&MockUserRepository{}, &MockPasswordHasher{}, &MockTokenService{}, nil)

	_, err := useCase.Execute(context.Background(), dtos.LoginCommand{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	if domainErrors.CodeOf(err) != domainErrors.CodeInvalidCredentials {
		t.Fatalf("Expected INVALID_CREDENTIALS, got %v", err)
	}
}

// TestLogin_AnonymizedAccount: анонимизированный аккаунт не может войти.
func TestLogin_AnonymizedAccount(t *testing.T) {
	u := newTestUser(t, "jean@example.com")
	if err := u.Anonymize(); err != nil {
		t.Fatalf("failed to anonymize: %v", err)
	}
	userRepo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entities.User, error) {
			return u, nil
		},
	}

	useCase := user.NewLoginUseCase(userRepo, &MockPasswordHasher{}, &MockTokenService{}, nil)

	_, err := useCase.Execute(context.Background(), dtos.LoginCommand{
		Email:    "jean@example.com",
		Password: "secret123",
	})

	if domainErrors.CodeOf(err) != domainErrors.CodeInvalidCredentials {
		t.Fatalf("Expected INVALID_CREDENTIALS, got %v", err)
	}
}
