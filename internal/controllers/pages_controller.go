package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blood_donor_system/internal/logger"
	"blood_donor_system/internal/webui"
)

// The page layer talks to the REST backend through a webui.Client instead
// of reaching into the database, mirroring the browser it replaces.
var (
	pagesClient *webui.Client

	// Grace period before a profile load failure is surfaced: one silent
	// retry absorbs transient hiccups during normal page startup.
	profileLoadGrace = time.Second
)

// SetPagesClient wires the backend client used by all page handlers.
func SetPagesClient(client *webui.Client) {
	pagesClient = client
}

func pageLog() *logrus.Entry {
	return logger.Component("pages")
}

// profileDocument declares every element identifier the profile page binds.
func profileDocument() *webui.Document {
	return webui.NewDocument(
		"fullName", "email", "phone", "sidebarUserName", "createdAt",
		"first_name", "last_name", "email_edit", "phone_edit",
		"bloodType", "birthDate", "gender", "weight", "height", "healthNotes",
		"donorStatus", "totalDonations",
		"hospitalName", "position", "department",
		"activeRequests", "scheduledDonations", "completedDonations",
		"totalUsers", "totalHospitals", "totalRequests",
	)
}

// loadCurrentUser fetches /auth/me/ for a page request. A 401 redirects to
// the login page immediately, with no further view work. Other failures get
// one retry after the grace period before the load error page is rendered.
func loadCurrentUser(c *gin.Context, api *webui.Client) (*webui.UserRecord, bool) {
	var user webui.UserRecord
	err := api.Get(c.Request.Context(), "/auth/me/", &user)
	if err == nil {
		return &user, true
	}
	if webui.IsUnauthorized(err) {
		c.Redirect(http.StatusSeeOther, "/pages/login")
		return nil, false
	}

	time.Sleep(profileLoadGrace)
	err = api.Get(c.Request.Context(), "/auth/me/", &user)
	if err == nil {
		return &user, true
	}
	if webui.IsUnauthorized(err) {
		c.Redirect(http.StatusSeeOther, "/pages/login")
		return nil, false
	}

	pageLog().Errorf("profile load failed: %v", err)
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Alert":  "Не вдалося завантажити дані профілю. Будь ласка, спробуйте пізніше.",
		"Doc":    profileDocument(),
		"Panels": webui.ProfilePanels(),
	})
	return nil, false
}

// bindIdentity fills the identity fields shown on the overview panel, the
// sidebar, and the edit form.
func bindIdentity(doc *webui.Document, user *webui.UserRecord) {
	phone := user.PhoneNumber
	if phone == "" {
		phone = "-"
	}
	doc.SetField("fullName", user.FullName())
	doc.SetField("email", user.Email)
	doc.SetField("phone", phone)
	doc.SetText("sidebarUserName", user.FullName())
	doc.SetField("createdAt", webui.FormatDate(user.CreatedAt))

	doc.SetField("first_name", user.FirstName)
	doc.SetField("last_name", user.LastName)
	doc.SetField("email_edit", user.Email)
	doc.SetField("phone_edit", user.PhoneNumber)
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// renderProfile builds the whole profile view: identity bindings, one badge
// per active role flag, and the role-specific sections. Entries in form
// overwrite the stored identity bindings, so a rejected submission keeps
// what the user typed. The hospital and admin widget fetches degrade
// independently: failures are logged, never surfaced.
func renderProfile(c *gin.Context, api *webui.Client, user *webui.UserRecord, alert, tab string, form map[string]string) {
	doc := profileDocument()
	bindIdentity(doc, user)
	for id, value := range form {
		doc.SetField(id, value)
	}

	donations := webui.BuildDonationTable(nil)
	requests := webui.BuildRequestTable(nil)
	donorEligible := false

	if user.IsDonor {
		if donor := user.Donor(); donor != nil {
			doc.SetText("bloodType", orDash(donor.BloodType))
			doc.SetField("birthDate", webui.FormatDate(donor.DateOfBirth))
			doc.SetField("gender", orDash(donor.Gender))
			doc.SetField("weight", formatMeasure(donor.Weight, "кг"))
			doc.SetField("height", formatMeasure(donor.Height, "см"))
			if donor.HealthNotes != "" {
				doc.SetField("healthNotes", donor.HealthNotes)
			} else {
				doc.SetField("healthNotes", "Немає записів")
			}
			donorEligible = donor.IsEligible
			if donor.IsEligible {
				doc.SetText("donorStatus", "Активний")
			} else {
				doc.SetText("donorStatus", "Не активний")
			}
			doc.SetText("totalDonations", itoa(len(donor.Donations)))
			donations = webui.BuildDonationTable(donor.Donations)
		}
	}

	if user.IsHospitalStaff {
		if staff := user.Staff(); staff != nil {
			if staff.Hospital != nil && staff.Hospital.Name != "" {
				doc.SetField("hospitalName", staff.Hospital.Name)
			}
			doc.SetField("position", orDash(staff.Role))
			doc.SetField("department", orDash(staff.Department))
			fetchHospitalStats(c, api, doc, staff.HospitalID)
			requests = fetchBloodRequests(c, api, staff.HospitalID)
		}
	}

	if user.IsAdmin {
		fetchAdminStats(c, api, doc)
	}

	panels := webui.ProfilePanels()
	if tab != "" {
		panels = panels.Switch(tab)
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Alert":         alert,
		"Doc":           doc,
		"Panels":        panels,
		"User":          user,
		"Badges":        webui.RoleBadges(*user),
		"Donations":     donations,
		"Requests":      requests,
		"DonorEligible": donorEligible,
	})
}

// fetchHospitalStats fills the staff dashboard counters; a failed fetch
// leaves them blank and only logs.
func fetchHospitalStats(c *gin.Context, api *webui.Client, doc *webui.Document, hospitalID uint) {
	var stats webui.HospitalStats
	if err := api.Get(c.Request.Context(), hospitalPath(hospitalID, "stats"), &stats); err != nil {
		pageLog().Errorf("failed to fetch hospital stats: %v", err)
		return
	}
	doc.SetText("activeRequests", itoa(stats.ActiveRequests))
	doc.SetText("scheduledDonations", itoa(stats.ScheduledDonations))
	doc.SetText("completedDonations", itoa(stats.CompletedDonations))
}

func fetchBloodRequests(c *gin.Context, api *webui.Client, hospitalID uint) webui.RequestTable {
	var requests []webui.BloodRequestRecord
	if err := api.Get(c.Request.Context(), hospitalPath(hospitalID, "blood-requests"), &requests); err != nil {
		pageLog().Errorf("failed to fetch blood requests: %v", err)
		return webui.BuildRequestTable(nil)
	}
	return webui.BuildRequestTable(requests)
}

func fetchAdminStats(c *gin.Context, api *webui.Client, doc *webui.Document) {
	var stats webui.AdminStats
	if err := api.Get(c.Request.Context(), "/api/admin/stats", &stats); err != nil {
		pageLog().Errorf("failed to fetch admin stats: %v", err)
		return
	}
	doc.SetText("totalUsers", itoa(stats.UserCount))
	doc.SetText("totalHospitals", itoa(stats.HospitalCount))
	doc.SetText("totalRequests", itoa(stats.BloodRequestCount))
}

// ProfilePage renders the profile with role badges and role-specific data.
func ProfilePage(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)
	user, ok := loadCurrentUser(c, api)
	if !ok {
		return
	}
	renderProfile(c, api, user, "", c.Query("tab"), nil)
}

// UpdateProfilePage submits the edit form to the backend. On failure the
// submitted values are retained for correction; on success the displayed
// identity fields come from the returned updated record.
func UpdateProfilePage(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)

	form := map[string]string{
		"first_name": c.PostForm("first_name"),
		"last_name":  c.PostForm("last_name"),
		"email_edit": c.PostForm("email_edit"),
		"phone_edit": c.PostForm("phone_edit"),
	}
	payload := gin.H{
		"first_name":   form["first_name"],
		"last_name":    form["last_name"],
		"email":        form["email_edit"],
		"phone_number": form["phone_edit"],
	}

	var updated webui.UserRecord
	if err := api.Put(c.Request.Context(), "/auth/profile/update", payload, &updated); err != nil {
		if webui.IsUnauthorized(err) {
			c.Redirect(http.StatusSeeOther, "/pages/login")
			return
		}
		user, ok := loadCurrentUser(c, api)
		if !ok {
			return
		}
		renderProfile(c, api, user, webui.PresentError(err), "profile-edit", form)
		return
	}

	renderProfile(c, api, &updated, "Профіль успішно оновлено!", "", nil)
}

// ChangePasswordPage handles the password form. A local mismatch check
// blocks submission before any backend call is made.
func ChangePasswordPage(c *gin.Context) {
	newPassword := c.PostForm("new_password")
	confirmPassword := c.PostForm("confirm_password")

	if newPassword != confirmPassword {
		// Rendered without a backend round trip; the hidden display_name
		// field keeps the identity visible on the mismatch page.
		doc := profileDocument()
		if name := c.PostForm("display_name"); name != "" {
			doc.SetField("fullName", name)
			doc.SetText("sidebarUserName", name)
		}
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"Alert":  "Нові паролі не співпадають!",
			"Doc":    doc,
			"Panels": webui.ProfilePanels().Switch("password-change"),
		})
		return
	}

	api := pagesClient.ForRequest(c.Request)
	payload := gin.H{
		"current_password": c.PostForm("current_password"),
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	if err := api.Post(c.Request.Context(), "/auth/profile/change-password", payload, nil); err != nil {
		if webui.IsUnauthorized(err) {
			c.Redirect(http.StatusSeeOther, "/pages/login")
			return
		}
		user, ok := loadCurrentUser(c, api)
		if !ok {
			return
		}
		renderProfile(c, api, user, webui.PresentError(err), "password-change", nil)
		return
	}

	// Success: the form resets and the user lands back on the overview tab.
	c.Redirect(http.StatusSeeOther, "/pages/profile")
}

// ExportDonationHistoryPage proxies the donor's CSV export as a download
// named donation_history.csv.
func ExportDonationHistoryPage(c *gin.Context) {
	api := pagesClient.ForRequest(c.Request)

	data, contentType, err := api.GetBlob(c.Request.Context(), "/api/donors/me/donations/export")
	if err != nil {
		if webui.IsUnauthorized(err) {
			c.Redirect(http.StatusSeeOther, "/pages/login")
			return
		}
		user, ok := loadCurrentUser(c, api)
		if !ok {
			return
		}
		renderProfile(c, api, user, "Помилка при завантаженні історії донацій", "donor-section", nil)
		return
	}

	if contentType == "" {
		contentType = "text/csv; charset=utf-8"
	}
	c.Header("Content-Disposition", `attachment; filename="donation_history.csv"`)
	c.Data(http.StatusOK, contentType, data)
}

func formatMeasure(v float64, unit string) string {
	if v == 0 {
		return "-"
	}
	return trimFloat(v) + " " + unit
}
