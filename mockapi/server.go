package mockapi

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"
)

// CreatedID is the id that the demo API assigns to every created user. It is one more than the
// number of seeded users, and the record is never actually stored.
const CreatedID = 11

// Server is an in-process imitation of the demo API's users resource. It reproduces the
// behavior the tests depend on, including that writes are accepted but never persisted.
type Server struct {
	echo      *echo.Echo
	users     []map[string]interface{}
	overrides map[string]int
	requests  map[string]int
	lock      sync.Mutex
}

// New creates a Server seeded with the demo API's ten users.
func New() *Server {
	s := &Server{
		echo:      echo.New(),
		users:     seedUsers(),
		overrides: make(map[string]int),
		requests:  make(map[string]int),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(s.countRequests, s.applyOverrides)

	s.echo.GET("/users", s.listUsers)
	s.echo.GET("/users/:id", s.getUser)
	s.echo.POST("/users", s.createUser)
	s.echo.PUT("/users/:id", s.replaceUser)
	s.echo.DELETE("/users/:id", s.deleteUser)
	s.echo.GET("/", func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]interface{}{}) })
	return s
}

// ServeHTTP makes the Server usable with httptest.NewServer.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// OverrideStatus makes every request with the given method and route (as registered, such as
// "/users/:id") fail with status and an empty JSON object. It is for testing how the suite
// reports failures.
func (s *Server) OverrideStatus(method, route string, status int) {
	s.lock.Lock()
	s.overrides[method+" "+route] = status
	s.lock.Unlock()
}

// RequestCount returns how many requests were received for a method and route.
func (s *Server) RequestCount(method, route string) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.requests[method+" "+route]
}

func (s *Server) countRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.lock.Lock()
		s.requests[c.Request().Method+" "+c.Path()]++
		s.lock.Unlock()
		return next(c)
	}
}

func (s *Server) applyOverrides(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.lock.Lock()
		status, ok := s.overrides[c.Request().Method+" "+c.Path()]
		s.lock.Unlock()
		if ok {
			return c.JSON(status, map[string]interface{}{})
		}
		return next(c)
	}
}

func (s *Server) listUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.users)
}

func (s *Server) getUser(c echo.Context) error {
	user := s.findUser(c.Param("id"))
	if user == nil {
		return c.JSON(http.StatusNotFound, map[string]interface{}{})
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) createUser(c echo.Context) error {
	body := make(map[string]interface{})
	if err := c.Bind(&body); err != nil {
		return err
	}
	body["id"] = CreatedID
	return c.JSON(http.StatusCreated, body)
}

func (s *Server) replaceUser(c echo.Context) error {
	existing := s.findUser(c.Param("id"))
	if existing == nil {
		// The demo API fails this way when asked to replace a user it does not have.
		return echo.NewHTTPError(http.StatusInternalServerError, "TypeError: Cannot read properties of undefined (reading 'id')")
	}
	body := make(map[string]interface{})
	if err := c.Bind(&body); err != nil {
		return err
	}
	body["id"] = existing["id"]
	return c.JSON(http.StatusOK, body)
}

func (s *Server) deleteUser(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{})
}

func (s *Server) findUser(idParam string) map[string]interface{} {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil
	}
	for _, u := range s.users {
		if u["id"] == id {
			return u
		}
	}
	return nil
}
