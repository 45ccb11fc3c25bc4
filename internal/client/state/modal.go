package state

// Modal identifies the single dialog that may be open at any time. The
// original UI tracked one boolean per dialog and enforced exclusivity with a
// close-all helper; a single enum makes the exclusivity structural.
type Modal int

const (
	ModalNone Modal = iota
	ModalLogin
	ModalRegister
	ModalEmail
	ModalPhone
	ModalNotificationPrefs
	ModalBlogDetail
	ModalEditBlog
	ModalCreateBlog
	ModalUserBlogs
	ModalEmailOTP
	ModalMobileOTP
	ModalForgotPassword
	ModalResetPassword
	ModalAIHelper
)

var modalNames = map[Modal]string{
	ModalNone:              "none",
	ModalLogin:             "login",
	ModalRegister:          "register",
	ModalEmail:             "email",
	ModalPhone:             "phone",
	ModalNotificationPrefs: "notification-prefs",
	ModalBlogDetail:        "blog-detail",
	ModalEditBlog:          "edit-blog",
	ModalCreateBlog:        "create-blog",
	ModalUserBlogs:         "user-blogs",
	ModalEmailOTP:          "email-otp",
	ModalMobileOTP:         "mobile-otp",
	ModalForgotPassword:    "forgot-password",
	ModalResetPassword:     "reset-password",
	ModalAIHelper:          "ai-helper",
}

func (m Modal) String() string {
	if n, ok := modalNames[m]; ok {
		return n
	}
	return "unknown"
}
