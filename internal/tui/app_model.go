package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenMenu
	screenDashboard
	screenBuses
	screenSchedules
	screenUsers
	screenBusForm
)

const (
	msgAdminOnly    = "Administrator access required"
	msgCopied       = "Copied!"
	msgFieldsNeeded = "Email and password are required"
)

// Register form fields.
const (
	regName = iota
	regEmail
	regPhone
	regPassword
	regRepeat
	regRole
)

// Bus form fields.
const (
	busNumber = iota
	busPlate
	busModel
	busCapacity
	busType
	busFuel
	busYear
	busAmenities
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	buildInfo     models.AppBuildInfo
	logger        *logger.Logger
	currentScreen screen

	welcome   welcomeModel
	login     formModel
	register  formModel
	menu      menuModel
	dashboard dashboardModel
	buses     listModel[models.Bus]
	schedules listModel[models.Schedule]
	users     listModel[models.User]
	busForm   formModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete tea.Cmd
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		logger:        log,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginForm(),
		register:      newRegisterForm(),
		buses:         newBusList(),
		schedules:     newScheduleList(),
		users:         newUserList(),
		busForm:       newBusForm(),
	}
}

func newLoginForm() formModel {
	return newFormModel("SIGN IN",
		textField("Email", "admin@example.com", 128),
		secretField("Password"),
	)
}

func newRegisterForm() formModel {
	return newFormModel("CREATE ACCOUNT",
		textField("Name", "", 64),
		textField("Email", "", 128),
		textField("Phone", "optional", 32),
		secretField("Password"),
		secretField("Repeat password"),
		choiceField("Role", string(models.RoleClient), string(models.RoleDriver), string(models.RoleAdmin)),
	)
}

func newBusForm() formModel {
	return newFormModel("NEW BUS",
		textField("Bus number", "BUS004", 16),
		textField("License plate", "", 16),
		textField("Model", "", 64),
		textField("Capacity", "50", 4),
		textField("Type", models.DefaultBusType, 32),
		choiceField("Fuel", "diesel", "petrol", "electric", "hybrid"),
		textField("Year", "optional", 4),
		textField("Amenities", "WiFi, AC", 128),
	)
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				cmd := m.pendingDelete
				m.pendingDelete = nil
				return m, cmd
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = nil
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case authDoneMsg:
		m.login.submitting = false
		m.register.submitting = false
		if !msg.resp.Success {
			m.popError(valueOrDash(msg.resp.Message))
			return m, nil
		}
		m.login = m.login.reset()
		m.register = m.register.reset()
		m.menu = newMenuModel(m.services.Session)
		m.currentScreen = screenMenu
		return m, nil
	case profileLoadedMsg:
		if msg.err != nil {
			return m.failed(msg.err), nil
		}
		m.menu = m.menu.refreshed(m.services.Session)
		return m, nil
	case dashboardLoadedMsg:
		m.dashboard.loading = false
		if msg.err != nil {
			return m.failed(msg.err), nil
		}
		m.dashboard.overview = msg.overview
		m.dashboard.loaded = true
		return m, nil
	case busesLoadedMsg:
		m.buses.loading = false
		if msg.err != nil {
			return m.failed(msg.err), nil
		}
		m.buses = m.buses.withItems(msg.buses)
		return m, nil
	case schedulesLoadedMsg:
		m.schedules.loading = false
		if msg.err != nil {
			return m.failed(msg.err), nil
		}
		m.schedules = m.schedules.withItems(msg.schedules)
		return m, nil
	case usersLoadedMsg:
		m.users.loading = false
		if msg.err != nil {
			return m.failed(msg.err), nil
		}
		m.users = m.users.withItems(msg.users)
		return m, nil
	case mutationDoneMsg:
		m.busForm.submitting = false
		if msg.err != nil {
			return m.failed(msg.err), nil
		}
		if m.currentScreen == screenBusForm {
			m.busForm = m.busForm.reset()
			m.currentScreen = screenBuses
		}
		m.setStatus(msg.status)
		return m, tea.Batch(m.reload(), cmdClearStatus())
	case copiedMsg:
		m.setStatus(msgCopied)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.setStatus("")
		return m, nil
	case errMsg:
		m.popError(humanizeError(msg.err))
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		switch {
		case m.login.submitting:
			m.login.spinner, cmd = m.login.spinner.Update(msg)
		case m.register.submitting:
			m.register.spinner, cmd = m.register.spinner.Update(msg)
		case m.busForm.submitting:
			m.busForm.spinner, cmd = m.busForm.spinner.Update(msg)
		}
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenBuses:
		return m.updateBuses(msg)
	case screenSchedules:
		return m.updateSchedules(msg)
	case screenUsers:
		return m.updateUsers(msg)
	case screenBusForm:
		return m.updateBusForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View("tab: next field  enter: sign in  esc: back")
	case screenRegister:
		body = m.register.View("tab: next field  ←/→: role  enter: create  esc: back")
	case screenMenu:
		body = m.menu.View()
	case screenDashboard:
		body = m.dashboard.View()
	case screenBuses:
		body = m.buses.View(m.listHotKeys(true))
	case screenSchedules:
		body = m.schedules.View(m.listHotKeys(false))
	case screenUsers:
		body = m.users.View(m.listHotKeys(false))
	case screenBusForm:
		body = m.busForm.View("tab: next field  ←/→: fuel  enter: save  esc: cancel")
	}

	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.buildInfo)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) listHotKeys(canCreate bool) string {
	hk := "↑/↓: move  /: search  r: refresh  c: copy"
	if m.services.Session.IsAdmin() {
		if canCreate {
			hk += "  n: new"
		}
		hk += "  s: status  d: delete"
	}
	return hk + "  esc: back"
}

func (m *appModel) popError(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) {
	m.buses.status = status
	m.schedules.status = status
	m.users.status = status
}

// failed shows err. A rejected token ends the session.
func (m appModel) failed(err error) appModel {
	m.logger.Debug().Err(err).Int("screen", int(m.currentScreen)).Msg("request failed")

	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, service.ErrNotAuthenticated) {
		m = m.signedOut()
		m.popError(msgSessionExpired)
		return m
	}
	m.popError(humanizeError(err))
	return m
}

// signedOut clears the session and every screen that showed its data.
func (m appModel) signedOut() appModel {
	m.services.Auth.Logout()
	return newAppModel(m.ctx, m.services, m.buildInfo, m.logger)
}

func (m appModel) open(target screen) (appModel, tea.Cmd) {
	m.currentScreen = target
	switch target {
	case screenDashboard:
		m.dashboard.loading = true
	case screenBuses:
		m.buses.loading = true
	case screenSchedules:
		m.schedules.loading = true
	case screenUsers:
		m.users.loading = true
	}
	return m, m.reload()
}

// reload fetches the data of the current screen.
func (m appModel) reload() tea.Cmd {
	switch m.currentScreen {
	case screenDashboard:
		return m.cmdLoadDashboard()
	case screenBuses:
		return m.cmdLoadBuses()
	case screenSchedules:
		return m.cmdLoadSchedules()
	case screenUsers:
		return m.cmdLoadUsers()
	}
	return nil
}

func (m *appModel) askDelete(label string, cmd tea.Cmd) {
	m.showConfirm = true
	m.confirm.message = label
	m.pendingDelete = cmd
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.welcome.idx = moveCursor(m.welcome.idx, -1, len(m.welcome.items))
	case key.Matches(keyMsg, keys.down):
		m.welcome.idx = moveCursor(m.welcome.idx, 1, len(m.welcome.items))
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.login.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login = m.login.reset()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			email, password := m.login.value(0), m.login.secret(1)
			if email == "" || password == "" {
				m.popError(msgFieldsNeeded)
				return m, nil
			}
			m.login.submitting = true
			return m, tea.Batch(m.cmdLogin(email, password), m.login.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.register.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.register = m.register.reset()
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = m.register.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = m.register.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			req := models.RegisterRequest{
				Name:     m.register.value(regName),
				Email:    m.register.value(regEmail),
				Phone:    m.register.value(regPhone),
				Password: m.register.secret(regPassword),
				Role:     models.Role(m.register.value(regRole)),
			}
			if req.Name == "" || req.Email == "" || req.Password == "" {
				m.popError("Name, email and password are required")
				return m, nil
			}
			if req.Password != m.register.secret(regRepeat) {
				m.popError("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, tea.Batch(m.cmdRegister(req), m.register.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.update(msg)
	return m, cmd
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.menu.idx = moveCursor(m.menu.idx, -1, len(m.menu.items))
	case key.Matches(keyMsg, keys.down):
		m.menu.idx = moveCursor(m.menu.idx, 1, len(m.menu.items))
	case key.Matches(keyMsg, keys.enter):
		if len(m.menu.items) == 0 {
			return m, nil
		}
		return m.open(m.menu.items[m.menu.idx].target)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefreshProfile()
	case key.Matches(keyMsg, keys.logout):
		return m.signedOut(), nil
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(keyMsg, keys.refresh):
		m.dashboard.loading = true
		return m, m.cmdLoadDashboard()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

// updateListKeys handles the search box and cursor of a list. handled is
// false for keys the screen must interpret itself.
func updateListKeys[T any](l listModel[T], msg tea.Msg) (listModel[T], tea.Cmd, bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if l.searching {
		if isKey {
			switch {
			case key.Matches(keyMsg, keys.esc):
				l.searching = false
				l.search.Blur()
				l.search.SetValue("")
				l.idx = 0
				return l, nil, true
			case key.Matches(keyMsg, keys.enter):
				l.searching = false
				l.search.Blur()
				return l, nil, true
			}
		}
		var cmd tea.Cmd
		l.search, cmd = l.search.Update(msg)
		l.idx = moveCursor(l.idx, 0, len(l.visible()))
		return l, cmd, true
	}

	if !isKey {
		return l, nil, true
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		return l.move(-1), nil, true
	case key.Matches(keyMsg, keys.down):
		return l.move(1), nil, true
	case key.Matches(keyMsg, keys.search):
		l.searching = true
		return l, l.search.Focus(), true
	}
	return l, nil, false
}

// updateListScreen handles keys common to every list screen after the list
// itself declined them.
func (m appModel) updateListScreen(keyMsg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMenu
		return m, nil, true
	case key.Matches(keyMsg, keys.refresh):
		next, cmd := m.open(m.currentScreen)
		return next, cmd, true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit, true
	case key.Matches(keyMsg, keys.newItem), key.Matches(keyMsg, keys.status), key.Matches(keyMsg, keys.delete):
		if !m.services.Session.IsAdmin() {
			m.popError(msgAdminOnly)
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m appModel) updateBuses(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd     tea.Cmd
		handled bool
	)
	if m.buses, cmd, handled = updateListKeys(m.buses, msg); handled {
		return m, cmd
	}
	keyMsg := msg.(tea.KeyMsg)
	if m, cmd, handled = m.updateListScreen(keyMsg); handled {
		return m, cmd
	}

	if key.Matches(keyMsg, keys.newItem) {
		m.busForm = m.busForm.reset()
		m.currentScreen = screenBusForm
		return m, textinput.Blink
	}

	bus, ok := m.buses.selected()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(bus.BusNumber)
	case key.Matches(keyMsg, keys.status):
		return m, m.cmdUpdateBusStatus(bus, nextOf(models.BusStatuses, bus.Status))
	case key.Matches(keyMsg, keys.delete):
		m.askDelete("bus "+bus.BusNumber, m.cmdDeleteBus(bus))
	}
	return m, nil
}

func (m appModel) updateSchedules(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd     tea.Cmd
		handled bool
	)
	if m.schedules, cmd, handled = updateListKeys(m.schedules, msg); handled {
		return m, cmd
	}
	keyMsg := msg.(tea.KeyMsg)
	if m, cmd, handled = m.updateListScreen(keyMsg); handled {
		return m, cmd
	}

	sched, ok := m.schedules.selected()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(sched.RouteDisplay())
	case key.Matches(keyMsg, keys.status):
		return m, m.cmdUpdateScheduleStatus(sched, nextOf(models.ScheduleStatuses, sched.Status))
	case key.Matches(keyMsg, keys.delete):
		m.askDelete("trip "+sched.RouteDisplay(), m.cmdDeleteSchedule(sched))
	}
	return m, nil
}

func (m appModel) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd     tea.Cmd
		handled bool
	)
	if m.users, cmd, handled = updateListKeys(m.users, msg); handled {
		return m, cmd
	}
	keyMsg := msg.(tea.KeyMsg)
	if m, cmd, handled = m.updateListScreen(keyMsg); handled {
		return m, cmd
	}
	if key.Matches(keyMsg, keys.newItem) {
		return m, nil
	}

	user, ok := m.users.selected()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(user.Email)
	case key.Matches(keyMsg, keys.status):
		return m, m.cmdUpdateUserStatus(user, nextOf(models.UserStatuses, user.Status))
	case key.Matches(keyMsg, keys.delete):
		m.askDelete("user "+user.String(), m.cmdDeleteUser(user))
	}
	return m, nil
}

func (m appModel) updateBusForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.busForm.submitting {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.busForm = m.busForm.reset()
			m.currentScreen = screenBuses
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.busForm = m.busForm.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.busForm = m.busForm.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			bus, problem := busFromForm(m.busForm)
			if problem != "" {
				m.popError(problem)
				return m, nil
			}
			m.busForm.submitting = true
			return m, tea.Batch(m.cmdCreateBus(bus), m.busForm.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.busForm, cmd = m.busForm.update(msg)
	return m, cmd
}

// busFromForm builds a bus from the form. problem describes the first
// invalid field.
func busFromForm(f formModel) (bus models.Bus, problem string) {
	bus = models.NewBus()
	bus.BusNumber = f.value(busNumber)
	bus.LicensePlate = f.value(busPlate)
	bus.Model = f.value(busModel)
	bus.FuelType = f.value(busFuel)
	bus.SetAmenitiesFromString(f.value(busAmenities))
	if v := f.value(busType); v != "" {
		bus.Type = v
	}

	if bus.BusNumber == "" || bus.LicensePlate == "" {
		return models.Bus{}, "Bus number and license plate are required"
	}

	capacity, err := strconv.Atoi(f.value(busCapacity))
	if err != nil || capacity < 1 {
		return models.Bus{}, "Capacity must be a positive number"
	}
	bus.Capacity = capacity

	if v := f.value(busYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return models.Bus{}, "Year must be a number"
		}
		bus.Year = year
	}
	return bus, ""
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return authDoneMsg{resp: auth.Login(ctx, email, password)}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		return authDoneMsg{resp: auth.Register(ctx, req)}
	}
}

func (m appModel) cmdRefreshProfile() tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		_, err := auth.Me(ctx)
		return profileLoadedMsg{err: err}
	}
}

func (m appModel) cmdLoadDashboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Dashboard
	return func() tea.Msg {
		overview, err := svc.Overview(ctx)
		return dashboardLoadedMsg{overview: overview, err: err}
	}
}

func (m appModel) cmdLoadBuses() tea.Cmd {
	ctx := m.ctx
	repo := m.services.Buses
	return func() tea.Msg {
		buses, err := repo.List(ctx, models.BusFilter{})
		return busesLoadedMsg{buses: buses, err: err}
	}
}

func (m appModel) cmdLoadSchedules() tea.Cmd {
	ctx := m.ctx
	repo := m.services.Schedules
	return func() tea.Msg {
		schedules, err := repo.List(ctx, models.ScheduleFilter{})
		return schedulesLoadedMsg{schedules: schedules, err: err}
	}
}

func (m appModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	repo := m.services.Users
	return func() tea.Msg {
		users, err := repo.List(ctx, models.UserFilter{})
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m appModel) cmdCreateBus(bus models.Bus) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Buses
	return func() tea.Msg {
		created, err := repo.Create(ctx, bus)
		return mutationDoneMsg{status: fmt.Sprintf("Bus %s added", created.BusNumber), err: err}
	}
}

func (m appModel) cmdUpdateBusStatus(bus models.Bus, status models.BusStatus) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Buses
	return func() tea.Msg {
		_, err := repo.UpdateStatus(ctx, bus.ID, status)
		return mutationDoneMsg{status: fmt.Sprintf("Bus %s is now %s", bus.BusNumber, status), err: err}
	}
}

func (m appModel) cmdDeleteBus(bus models.Bus) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Buses
	return func() tea.Msg {
		err := repo.Delete(ctx, bus.ID)
		return mutationDoneMsg{status: fmt.Sprintf("Bus %s deleted", bus.BusNumber), err: err}
	}
}

func (m appModel) cmdUpdateScheduleStatus(sched models.Schedule, status models.ScheduleStatus) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Schedules
	return func() tea.Msg {
		_, err := repo.UpdateStatus(ctx, sched.ID, models.ScheduleStatusUpdate{Status: status})
		return mutationDoneMsg{status: fmt.Sprintf("Trip %s is now %s", sched.RouteDisplay(), status), err: err}
	}
}

func (m appModel) cmdDeleteSchedule(sched models.Schedule) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Schedules
	return func() tea.Msg {
		err := repo.Delete(ctx, sched.ID)
		return mutationDoneMsg{status: fmt.Sprintf("Trip %s deleted", sched.RouteDisplay()), err: err}
	}
}

func (m appModel) cmdUpdateUserStatus(user models.User, status models.UserStatus) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Users
	return func() tea.Msg {
		user.Status = status
		_, err := repo.Update(ctx, user.ID, user)
		return mutationDoneMsg{status: fmt.Sprintf("%s is now %s", user.Name, status), err: err}
	}
}

func (m appModel) cmdDeleteUser(user models.User) tea.Cmd {
	ctx := m.ctx
	repo := m.services.Users
	return func() tea.Msg {
		err := repo.Delete(ctx, user.ID)
		return mutationDoneMsg{status: fmt.Sprintf("%s deleted", user.Name), err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
