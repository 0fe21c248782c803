package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ideanest/config"
	"ideanest/db"
	"ideanest/models"
	"ideanest/structs"
	"ideanest/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errTokenMissing = errors.New("authentication succeeded but no access token was returned")

// AuthController wraps the Cognito user pool for account creation and login.
type AuthController struct {
	Config *config.Config
	Logger *zap.Logger
}

func (ac *AuthController) SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid email and a password of at least 6 characters are required"})
		return
	}

	name := request.Name
	if name == "" {
		name = utils.ExtractNameFromEmail(request.Email)
	}

	userSub, err := ac.signUpWithCognito(ctx.Request.Context(), request.Email, request.Password, name)
	if err != nil {
		if isAlreadyRegistered(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		ac.Logger.Error("sign-up failed", zap.String("email", request.Email), zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Profile persistence is best effort; the Cognito account is the source
	// of truth and already exists at this point.
	profile := models.UserProfile{
		ID:        userSub,
		Email:     request.Email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.SaveUserProfile(ctx.Request.Context(), profile); err != nil {
		ac.Logger.Warn("failed to store user profile", zap.String("email", request.Email), zap.Error(err))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    userSub,
			"email": request.Email,
			"name":  name,
		},
	})
}

func (ac *AuthController) Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	token, err := ac.loginWithCognito(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to sign in", "message": "Invalid email or password"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-in successful", "accessToken": token})
}

func (ac *AuthController) cognitoClient(ctx context.Context) (*cognitoidentityprovider.Client, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(ac.Config.Cognito.Region))
	if err != nil {
		return nil, err
	}
	return cognitoidentityprovider.NewFromConfig(awsCfg), nil
}

func (ac *AuthController) signUpWithCognito(ctx context.Context, email, password, name string) (string, error) {
	client, err := ac.cognitoClient(ctx)
	if err != nil {
		return "", err
	}

	secretHash := utils.GenerateSecretHash(email, ac.Config.Cognito.AppClientId, ac.Config.Cognito.AppClientSecret)

	input := cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(ac.Config.Cognito.AppClientId),
		Password:   aws.String(password),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(email),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
			{
				Name:  aws.String("nickname"),
				Value: aws.String(name),
			},
		},
	}

	out, err := client.SignUp(ctx, &input)
	if err != nil {
		return "", err
	}
	return aws.ToString(out.UserSub), nil
}

func (ac *AuthController) loginWithCognito(ctx context.Context, email, password string) (string, error) {
	client, err := ac.cognitoClient(ctx)
	if err != nil {
		return "", err
	}

	secretHash := utils.GenerateSecretHash(email, ac.Config.Cognito.AppClientId, ac.Config.Cognito.AppClientSecret)

	input := cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(ac.Config.Cognito.AppClientId),
		AuthParameters: map[string]string{
			"USERNAME":    email,
			"PASSWORD":    password,
			"SECRET_HASH": secretHash,
		},
	}

	out, err := client.InitiateAuth(ctx, &input)
	if err != nil {
		return "", err
	}
	if out.AuthenticationResult == nil || out.AuthenticationResult.AccessToken == nil {
		return "", errTokenMissing
	}
	return *out.AuthenticationResult.AccessToken, nil
}

func isAlreadyRegistered(err error) bool {
	var exists *types.UsernameExistsException
	if errors.As(err, &exists) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already registered") || strings.Contains(msg, "already exists")
}
