package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUser(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}
	assert.NoError(t, svc.UpdateFirstUser("admin", "correct horse"))

	user := svc.CheckUser("admin", "correct horse")
	if assert.NotNil(t, user) {
		assert.Equal(t, "admin", user.Username)
	}

	// Wrong password and unknown user both come back nil; the caller cannot
	// tell them apart.
	assert.Nil(t, svc.CheckUser("admin", "wrong"))
	assert.Nil(t, svc.CheckUser("nobody", "correct horse"))
}

func TestUpdateFirstUserValidation(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}
	assert.Error(t, svc.UpdateFirstUser("", "password"))
	assert.Error(t, svc.UpdateFirstUser("admin", ""))
}

func TestUpdateFirstUserRotatesCredentials(t *testing.T) {
	setup()
	defer teardown()

	svc := UserService{}
	assert.NoError(t, svc.UpdateFirstUser("admin", "first"))
	assert.NoError(t, svc.UpdateFirstUser("admin", "second"))

	assert.Nil(t, svc.CheckUser("admin", "first"))
	assert.NotNil(t, svc.CheckUser("admin", "second"))
}
