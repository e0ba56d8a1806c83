package screen

import (
	"context"
	"sync"

	"github.com/trezcool/masomo-desk/core"
	"github.com/trezcool/masomo-desk/core/panel"
	"github.com/trezcool/masomo-desk/core/school"
	"github.com/trezcool/masomo-desk/core/session"
	"github.com/trezcool/masomo-desk/core/user"
)

// Renderer draws a View, replacing whatever was drawn before.
type Renderer interface {
	Render(v View)
}

// Request is an input of the user to the Controller.
type Request interface {
	request()
}

type (
	ShowSignUp struct{}
	ShowLogin  struct{}
	Logout     struct{}

	Login struct {
		Username string
		Password string
	}

	SignUp struct {
		Username string
		Password string
		Name     string
		Email    string
		Role     string
	}

	UploadMarks      struct{ Form school.NewMark }
	SubmitAttendance struct{ Form school.NewAttendance }
	AssignAssignment struct{ Form school.NewAssignment }
	AssignProject    struct{ Form school.NewAssignment }
)

func (ShowSignUp) request()       {}
func (ShowLogin) request()        {}
func (Logout) request()           {}
func (Login) request()            {}
func (SignUp) request()           {}
func (UploadMarks) request()      {}
func (SubmitAttendance) request() {}
func (AssignAssignment) request() {}
func (AssignProject) request()    {}

// Acknowledgment messages of the logged-out screens
const (
	CredentialsRequired = "Username and password are required."
	AccountCreated      = "Account created successfully. Please login."
	SignUpFailed        = "Failed to create account."
)

// Controller owns the screen state machine. Requests are handled one at a time.
type Controller struct {
	mu       sync.Mutex
	state    State
	sess     *session.Session
	users    *user.Service
	school   *school.Service
	renderer Renderer
	logger   core.Logger

	uploadMarks       *panel.UploadMarks
	manageAttendance  *panel.ManageAttendance
	assignAssignments *panel.AssignAssignments
	assignProjects    *panel.AssignProjects
}

func NewController(
	sess *session.Session,
	users *user.Service,
	schoolSvc *school.Service,
	renderer Renderer,
	logger core.Logger,
) *Controller {
	return &Controller{
		state:             LoggedOutLogin,
		sess:              sess,
		users:             users,
		school:            schoolSvc,
		renderer:          renderer,
		logger:            logger,
		uploadMarks:       panel.NewUploadMarks(sess, schoolSvc, logger),
		manageAttendance:  panel.NewManageAttendance(sess, schoolSvc, logger),
		assignAssignments: panel.NewAssignAssignments(sess, schoolSvc, logger),
		assignProjects:    panel.NewAssignProjects(sess, schoolSvc, logger),
	}
}

// Start renders the initial Login screen.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer.Render(View{State: c.state})
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch handles req and returns the acknowledgment to show, which may be silent.
func (c *Controller) Dispatch(ctx context.Context, req Request) panel.Ack {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch r := req.(type) {
	case ShowSignUp:
		if c.state == LoggedOutLogin {
			c.transition(View{State: LoggedOutSignUp})
		}
	case ShowLogin:
		if c.state == LoggedOutSignUp {
			c.transition(View{State: LoggedOutLogin})
		}
	case Login:
		return c.login(ctx, r)
	case SignUp:
		return c.signUp(ctx, r)
	case Logout:
		if c.sess.IsAuthenticated() {
			c.logger.Info("logout (session " + c.sess.ID().String() + ")")
		}
		c.sess.Logout()
		c.transition(View{State: LoggedOutLogin})
	case UploadMarks:
		return c.uploadMarks.Submit(ctx, r.Form)
	case SubmitAttendance:
		return c.manageAttendance.Submit(ctx, r.Form)
	case AssignAssignment:
		return c.assignAssignments.Submit(ctx, r.Form)
	case AssignProject:
		return c.assignProjects.Submit(ctx, r.Form)
	}
	return panel.Ack{}
}

func (c *Controller) transition(v View) {
	c.state = v.State
	c.renderer.Render(v)
}

func (c *Controller) login(ctx context.Context, r Login) panel.Ack {
	if c.state != LoggedOutLogin {
		return panel.Ack{}
	}
	if r.Username == "" || r.Password == "" {
		return panel.InputError(CredentialsRequired)
	}
	if _, err := c.sess.Login(ctx, r.Username, r.Password); err != nil {
		return panel.AckFor(err, "Failed to login.")
	}

	v, err := dashboard(ctx, c.sess, c.school)
	if err != nil {
		c.logger.Error("entering dashboard", err)
		c.sess.Logout()
		return panel.Failure("Failed to load dashboard.")
	}
	c.transition(v)
	return panel.Ack{}
}

func (c *Controller) signUp(ctx context.Context, r SignUp) panel.Ack {
	if c.state != LoggedOutSignUp {
		return panel.Ack{}
	}
	if r.Username == "" || r.Password == "" || r.Name == "" || r.Email == "" || r.Role == "" {
		return panel.InputError(panel.AllFieldsRequired)
	}
	_, err := c.users.Create(ctx, user.NewUser{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
	})
	if err != nil {
		ack := panel.AckFor(err, SignUpFailed)
		if !core.IsValidationError(err) && !core.IsConstraintViolation(err) {
			c.logger.Error("signing up", err)
		}
		return ack
	}
	c.transition(View{State: LoggedOutLogin})
	return panel.Success(AccountCreated)
}
