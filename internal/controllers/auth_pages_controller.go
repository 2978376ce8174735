package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blood_donor_system/internal/webui"
)

type messageResult struct {
	Message string `json:"message"`
}

// relayCookies forwards any cookies the backend set (login session, logout
// deletion) to the browser.
func relayCookies(c *gin.Context, api *webui.Client) {
	for _, cookie := range api.ReceivedCookies() {
		http.SetCookie(c.Writer, cookie)
	}
}

// RegisterPage renders the registration form.
func RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"Form": map[string]string{}})
}

// RegisterSubmit creates the account and sends the user to the login page.
// On failure the submitted values (minus the password) are retained.
func RegisterSubmit(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)

	form := map[string]string{
		"first_name":   c.PostForm("first_name"),
		"last_name":    c.PostForm("last_name"),
		"email":        c.PostForm("email"),
		"phone_number": c.PostForm("phone_number"),
	}
	payload := gin.H{
		"first_name":   form["first_name"],
		"last_name":    form["last_name"],
		"email":        form["email"],
		"phone_number": form["phone_number"],
		"password":     c.PostForm("password"),
	}

	var result messageResult
	if err := api.Post(c.Request.Context(), "/auth/register", payload, &result); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Alert": webui.PresentError(err),
			"Form":  form,
		})
		return
	}

	if result.Message == "" {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Alert": webui.GenericErrorMessage,
			"Form":  form,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/pages/login")
}

// LoginPage renders the login form.
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

// loginRedirectTarget picks the post-login destination by role priority,
// highest privilege first.
func loginRedirectTarget(user webui.UserRecord) string {
	switch {
	case user.IsAdmin || user.IsSuperAdmin:
		return "/pages/admin/dashboard"
	case user.IsHospitalStaff:
		return "/pages/hospital_staff/dashboard"
	case user.IsDonor:
		return "/pages/donor/dashboard"
	default:
		return "/pages/profile"
	}
}

// LoginSubmit authenticates against the backend, relays the session cookie,
// and redirects by role priority.
func LoginSubmit(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)

	payload := gin.H{
		"email":    c.PostForm("email"),
		"password": c.PostForm("password"),
	}

	var result messageResult
	if err := api.Post(c.Request.Context(), "/auth/login", payload, &result); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Alert": webui.PresentError(err),
			"Email": c.PostForm("email"),
		})
		return
	}
	relayCookies(c, api)

	if result.Message == "" {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Alert": webui.GenericErrorMessage,
			"Email": c.PostForm("email"),
		})
		return
	}

	var user webui.UserRecord
	if err := api.Get(c.Request.Context(), "/auth/me/", &user); err != nil {
		pageLog().Errorf("failed to fetch user data after login: %v", err)
		c.Redirect(http.StatusSeeOther, "/pages/profile")
		return
	}

	c.Redirect(http.StatusSeeOther, loginRedirectTarget(user))
}

// LogoutSubmit clears the session and returns to the login page. A failed
// logout is logged and leaves the user where they were.
func LogoutSubmit(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)

	var result messageResult
	if err := api.Post(c.Request.Context(), "/auth/logout/", nil, &result); err != nil {
		pageLog().Errorf("logout failed: %v", err)
		back := c.Request.Referer()
		if back == "" {
			back = "/pages/profile"
		}
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	relayCookies(c, api)

	c.Redirect(http.StatusSeeOther, "/pages/login")
}

// AdminDashboard renders the platform-wide counters for admins.
func AdminDashboard(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)
	user, ok := loadCurrentUser(c, api)
	if !ok {
		return
	}
	if !(user.IsAdmin || user.IsSuperAdmin) {
		c.Redirect(http.StatusSeeOther, "/pages/profile")
		return
	}

	doc := webui.NewDocument("sidebarUserName", "totalUsers", "totalHospitals", "totalRequests")
	doc.SetText("sidebarUserName", user.FullName())
	fetchAdminStats(c, api, doc)

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Doc":    doc,
		"User":   user,
		"Badges": webui.RoleBadges(*user),
	})
}

// HospitalStaffDashboard renders the staff member's hospital counters and
// blood request table.
func HospitalStaffDashboard(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)
	user, ok := loadCurrentUser(c, api)
	if !ok {
		return
	}
	if !user.IsHospitalStaff {
		c.Redirect(http.StatusSeeOther, "/pages/profile")
		return
	}

	doc := webui.NewDocument(
		"sidebarUserName", "hospitalName", "position", "department",
		"activeRequests", "scheduledDonations", "completedDonations",
	)
	doc.SetText("sidebarUserName", user.FullName())

	requests := webui.BuildRequestTable(nil)
	if staff := user.Staff(); staff != nil {
		if staff.Hospital != nil {
			doc.SetField("hospitalName", staff.Hospital.Name)
		}
		doc.SetField("position", orDash(staff.Role))
		doc.SetField("department", orDash(staff.Department))
		fetchHospitalStats(c, api, doc, staff.HospitalID)
		requests = fetchBloodRequests(c, api, staff.HospitalID)
	}

	c.HTML(http.StatusOK, "staff_dashboard.html", gin.H{
		"Doc":      doc,
		"User":     user,
		"Badges":   webui.RoleBadges(*user),
		"Requests": requests,
	})
}

// DonorDashboard renders the donor's donation history.
func DonorDashboard(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)
	user, ok := loadCurrentUser(c, api)
	if !ok {
		return
	}
	if !user.IsDonor {
		c.Redirect(http.StatusSeeOther, "/pages/profile")
		return
	}

	doc := webui.NewDocument("sidebarUserName", "bloodType", "donorStatus", "totalDonations")
	doc.SetText("sidebarUserName", user.FullName())

	donations := webui.BuildDonationTable(nil)
	if donor := user.Donor(); donor != nil {
		doc.SetText("bloodType", orDash(donor.BloodType))
		if donor.IsEligible {
			doc.SetText("donorStatus", "Активний")
		} else {
			doc.SetText("donorStatus", "Не активний")
		}
		doc.SetText("totalDonations", itoa(len(donor.Donations)))
		donations = webui.BuildDonationTable(donor.Donations)
	}

	c.HTML(http.StatusOK, "donor_dashboard.html", gin.H{
		"Doc":       doc,
		"User":      user,
		"Badges":    webui.RoleBadges(*user),
		"Donations": donations,
	})
}
