package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogcli/internal/client/api"
	"blogcli/internal/client/models"
	"blogcli/internal/client/repositories/metadata"
	"blogcli/internal/client/state"
)

func TestUpdateEmailValidation(t *testing.T) {
	client := &fakeClient{}
	s, store, _ := newTestServices(client)

	s.Users.UpdateEmail(context.Background())
	assert.Equal(t, "Email is required", store.EmailForm.Error)

	store.EmailForm.Email = "nope"
	s.Users.UpdateEmail(context.Background())
	assert.Equal(t, "Please enter a valid email address", store.EmailForm.Error)

	assert.False(t, client.called("UpdateEmail"))
}

func TestUpdateEmailAdded(t *testing.T) {
	client := &fakeClient{updateEmailUserID: 7}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7}
	store.EmailForm.Email = "a@b.com"

	s.Users.UpdateEmail(context.Background())

	assert.Equal(t, state.ModalEmailOTP, store.ActiveModal())
	assert.Equal(t, int64(7), store.EmailOTPForm.UserID)
	assert.Equal(t, state.OTPRequested, store.EmailOTPState)

	n := store.Notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, "Email added! Please verify your email with the OTP sent to your inbox.", n.Message)
}

func TestUpdateEmailUpdated(t *testing.T) {
	client := &fakeClient{updateEmailUserID: 7}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7, HasEmail: true, Email: "a@b.com"}
	store.EmailForm.Email = "a@b.com"

	s.Users.UpdateEmail(context.Background())

	n := store.Notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, "Email updated! Please verify your email with the OTP sent to your inbox.", n.Message)
}

func TestUpdatePhoneValidation(t *testing.T) {
	client := &fakeClient{}
	s, store, _ := newTestServices(client)

	s.Users.UpdatePhone(context.Background())
	assert.Equal(t, "Phone number is required", store.PhoneForm.Error)

	store.PhoneForm.Phone = "12345"
	s.Users.UpdatePhone(context.Background())
	assert.Equal(t, "Phone number must be in format (e.g., +1234567890)", store.PhoneForm.Error)

	assert.False(t, client.called("UpdatePhone"))
}

func TestUpdatePhoneSMSSent(t *testing.T) {
	client := &fakeClient{phoneUpdateResult: &api.PhoneUpdateResult{
		UserID: 7, PendingPhone: "+37120000001", SMSSent: true,
	}}
	s, store, meta := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7, MobileVerified: true}
	store.PhoneForm.Phone = "+37120000001"

	s.Users.UpdatePhone(context.Background())

	assert.Equal(t, state.ModalMobileOTP, store.ActiveModal())
	assert.Equal(t, int64(7), store.MobileOTPForm.UserID)
	assert.Equal(t, "+37120000001", store.Session.Phone)
	assert.True(t, store.Session.HasPhone)
	// a new number must be re-verified
	assert.False(t, store.Session.MobileVerified)
	assert.Equal(t, state.OTPRequested, store.MobileOTPState)
	assert.Equal(t, []byte("+37120000001"), meta.m[metadata.KeyPhone])
}

func TestUpdatePhoneNotWhitelisted(t *testing.T) {
	client := &fakeClient{
		phoneUpdateResult: &api.PhoneUpdateResult{UserID: 7, PendingPhone: "+999"},
		checkAuthStatus:   &api.AuthStatus{UserID: 7},
	}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7}
	store.PhoneForm.Phone = "+999"
	store.OpenModal(state.ModalPhone)

	s.Users.UpdatePhone(context.Background())

	assert.NotEqual(t, state.ModalMobileOTP, store.ActiveModal())
	n := store.Notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, "Phone number is not on the whitelist. Please reach out to support for assistance.", n.Message)
	// session re-checked to pick up the server's view
	assert.True(t, client.called("CheckAuth"))
}

func TestOpenEmailModalPrefillsCurrentAddress(t *testing.T) {
	client := &fakeClient{}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, HasEmail: true, Email: "a@b.com"}

	s.Users.OpenEmailModal("")

	assert.Equal(t, state.ModalEmail, store.ActiveModal())
	assert.Equal(t, "a@b.com", store.EmailForm.Email)
	assert.Empty(t, store.EmailForm.Error)
}

func TestOpenPhoneModalFallsBackToCache(t *testing.T) {
	client := &fakeClient{}
	s, store, meta := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7}
	meta.m[metadata.KeyUserID] = []byte("7")
	meta.m[metadata.KeyPhone] = []byte("+371")

	s.Users.OpenPhoneModal(context.Background())

	assert.Equal(t, state.ModalPhone, store.ActiveModal())
	assert.Equal(t, "+371", store.PhoneForm.Phone)
	assert.Equal(t, "+371", store.Session.Phone)
}

func TestOpenNotificationPrefsRequiresEmail(t *testing.T) {
	client := &fakeClient{}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7}

	s.Users.OpenNotificationPrefsModal(context.Background())

	assert.Equal(t, state.ModalEmail, store.ActiveModal())
	assert.False(t, client.called("GetNotificationPreferences"))
}

func TestOpenNotificationPrefsLoadsStoredValues(t *testing.T) {
	client := &fakeClient{prefs: &models.NotificationPreferences{NotifyOnBlog: false, NotifyOnComment: true}}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7, HasEmail: true, Email: "a@b.com"}

	s.Users.OpenNotificationPrefsModal(context.Background())

	assert.Equal(t, state.ModalNotificationPrefs, store.ActiveModal())
	assert.False(t, store.NotificationPrefsForm.NotifyOnBlog)
	assert.True(t, store.NotificationPrefsForm.NotifyOnComment)
}

func TestUpdateNotificationPreferences(t *testing.T) {
	client := &fakeClient{}
	s, store, _ := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7}
	store.NotificationPrefsForm.NotifyOnBlog = false
	store.NotificationPrefsForm.NotifyOnComment = true
	store.OpenModal(state.ModalNotificationPrefs)

	s.Users.UpdateNotificationPreferences(context.Background())

	require.True(t, client.called("UpdateNotificationPreferences"))
	prefs := client.lastArgs("UpdateNotificationPreferences")[0].(models.NotificationPreferences)
	assert.False(t, prefs.NotifyOnBlog)
	assert.True(t, prefs.NotifyOnComment)
	assert.Equal(t, state.ModalNone, store.ActiveModal())
}

func TestRefreshUserDataBridgesPhone(t *testing.T) {
	client := &fakeClient{checkAuthStatus: &api.AuthStatus{UserID: 7, PhoneNumber: "+371"}}
	s, store, meta := newTestServices(client)
	store.Session = state.Session{Authenticated: true, UserID: 7, MobileVerified: true}

	s.Users.RefreshUserData(context.Background())

	assert.Equal(t, "+371", store.Session.Phone)
	assert.Equal(t, "+371", store.PhoneForm.Phone)
	assert.Equal(t, []byte("+371"), meta.m[metadata.KeyPhone])
}
