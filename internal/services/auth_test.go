package services_test

import (
	"github.com/billfold/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func (suite *TestSuiteStandard) TestRegister() {
	user, ok := suite.auth.Register("13800000001", "alice", "secret-password")
	assert.True(suite.T(), ok)
	assert.NotZero(suite.T(), user.ID)
	assert.Equal(suite.T(), models.RoleUser, user.Role)
	assert.True(suite.T(), user.Balance.IsZero())

	// The stored credential is a salted hash, never the raw string
	assert.NotEqual(suite.T(), "secret-password", user.Password)
	assert.Nil(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-password")))
}

func (suite *TestSuiteStandard) TestRegisterRejectsEmptyFields() {
	_, ok := suite.auth.Register("", "alice", "pwd")
	assert.False(suite.T(), ok)

	_, ok = suite.auth.Register("13800000001", "", "pwd")
	assert.False(suite.T(), ok)

	_, ok = suite.auth.Register("13800000001", "alice", "")
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestRegisterDuplicatePhone() {
	_, ok := suite.auth.Register("13800000001", "alice", "pwd-one")
	assert.True(suite.T(), ok)

	_, ok = suite.auth.Register("13800000001", "bob", "pwd-two")
	assert.False(suite.T(), ok)

	// Exactly one row persists
	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestLogin() {
	registered := suite.registerTestUser("13800000001")

	user, ok := suite.auth.Login("13800000001", "secret-password")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), registered.ID, user.ID)

	_, ok = suite.auth.Login("13800000001", "wrong-password")
	assert.False(suite.T(), ok)

	_, ok = suite.auth.Login("10000000000", "secret-password")
	assert.False(suite.T(), ok)

	_, ok = suite.auth.Login("", "secret-password")
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestResetPassword() {
	user := suite.registerTestUser("13800000001")

	assert.True(suite.T(), suite.auth.ResetPassword(user.ID, "secret-password", "new-password"))

	// The old credential no longer works, the new one does
	_, ok := suite.auth.Login("13800000001", "secret-password")
	assert.False(suite.T(), ok)

	_, ok = suite.auth.Login("13800000001", "new-password")
	assert.True(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestResetPasswordRejections() {
	user := suite.registerTestUser("13800000001")

	assert.False(suite.T(), suite.auth.ResetPassword(user.ID, "wrong-old", "new-password"), "wrong old password must be rejected")
	assert.False(suite.T(), suite.auth.ResetPassword(user.ID, "secret-password", ""), "empty new password must be rejected")
	assert.False(suite.T(), suite.auth.ResetPassword(user.ID, "secret-password", "secret-password"), "unchanged password must be rejected")
	assert.False(suite.T(), suite.auth.ResetPassword(user.ID+1, "secret-password", "new-password"), "unknown user must be rejected")
	assert.False(suite.T(), suite.auth.ResetPassword(0, "secret-password", "new-password"))

	// The original credential still verifies
	_, ok := suite.auth.Login("13800000001", "secret-password")
	require.True(suite.T(), ok)
}
