package services

import (
	"context"
	"testing"

	"voyago/internal/models"
	"voyago/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newAuthServiceForTest() (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, testJWTSecret, logger.NewNop()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha",
		Phone:    "+919876543210",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Empty(t, resp.User.Password, "password must never be returned")
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)

	login, err := svc.Login(ctx, &LoginRequest{Phone: "+919876543210", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	req := &RegisterRequest{Name: "Asha", Phone: "+919876543210", Password: "Str0ng!pass"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Phone: "+919876543210", Password: "Str0ng!pass"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Phone: "+919876543210", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Phone: "+910000000000", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Phone: "+919876543210", Password: "Str0ng!pass"})
	require.NoError(t, err)

	tokens, err := svc.RefreshToken(ctx, resp.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAddVehicleRejectsDuplicateID(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Phone: "+919876543210", Password: "Str0ng!pass"})
	require.NoError(t, err)
	userID := resp.User.ID

	vehicle := models.Vehicle{ID: "veh_abc12345", RegistrationNumber: "KA01AB1234"}
	user, err := svc.AddVehicle(ctx, userID, VehicleCategoryTwoWheeler, vehicle)
	require.NoError(t, err)
	require.Len(t, user.TwoWheelers, 1)

	_, err = svc.AddVehicle(ctx, userID, VehicleCategoryTwoWheeler, vehicle)
	assert.ErrorIs(t, err, ErrVehicleExists)

	// Same ID in the other category is allowed.
	user, err = svc.AddVehicle(ctx, userID, VehicleCategoryFourWheeler, vehicle)
	require.NoError(t, err)
	assert.Len(t, user.FourWheelers, 1)
}

func TestAddVehicleGeneratesID(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Phone: "+919876543210", Password: "Str0ng!pass"})
	require.NoError(t, err)

	user, err := svc.AddVehicle(ctx, resp.User.ID, VehicleCategoryFourWheeler, models.Vehicle{RegistrationNumber: "KA01AB1234"})
	require.NoError(t, err)
	require.Len(t, user.FourWheelers, 1)
	assert.NotEmpty(t, user.FourWheelers[0].ID)
}

func TestRemoveVehicle(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Phone: "+919876543210", Password: "Str0ng!pass"})
	require.NoError(t, err)
	userID := resp.User.ID

	_, err = svc.AddVehicle(ctx, userID, VehicleCategoryTwoWheeler, models.Vehicle{ID: "veh_1", RegistrationNumber: "KA01AB1234"})
	require.NoError(t, err)

	user, err := svc.RemoveVehicle(ctx, userID, VehicleCategoryTwoWheeler, "veh_1")
	require.NoError(t, err)
	assert.Empty(t, user.TwoWheelers)

	_, err = svc.RemoveVehicle(ctx, userID, VehicleCategoryTwoWheeler, "veh_1")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
