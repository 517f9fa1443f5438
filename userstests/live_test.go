//go:build live

package userstests

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/apitesting/users-api-tests/client"
	"github.com/apitesting/users-api-tests/fixtures"
	"github.com/apitesting/users-api-tests/servicedef"

	"github.com/stretchr/testify/suite"
)

// LiveSuite runs against the real demo API, or the API named by USERS_API_BASE_URL. Run it
// with "go test -tags live ./userstests/".
type LiveSuite struct {
	suite.Suite
	client   *client.Client
	fixtures *fixtures.Store
}

func TestLiveSuite(t *testing.T) {
	suite.Run(t, new(LiveSuite))
}

func (s *LiveSuite) SetupSuite() {
	baseURL := os.Getenv("USERS_API_BASE_URL")
	if baseURL == "" {
		baseURL = servicedef.DefaultBaseURL
	}
	c, err := client.New(baseURL, client.WithTimeout(30*time.Second))
	s.Require().NoError(err)
	s.Require().NoError(c.AwaitReachable(10*time.Second, nil))
	s.client = c
	s.fixtures = fixtures.Default()
}

func (s *LiveSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *LiveSuite) payload(name string) fixtures.Payload {
	p, err := s.fixtures.Payload(name)
	s.Require().NoError(err)
	return p.WithEmail(fixtures.UniqueEmail())
}

func (s *LiveSuite) TestListUsers() {
	resp, err := s.client.Get(servicedef.UsersPath)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.NotEmpty(resp.Items())
}

func (s *LiveSuite) TestCreateUser() {
	payload := s.payload(fixtures.NewUser)
	resp, err := s.client.Post(servicedef.UsersPath, payload)
	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(ExpectedCreatedName, resp.Field(servicedef.PropName).StringValue())

	resp, err = s.client.Get(servicedef.UserPath(resp.Field(servicedef.PropID).IntValue() - CreatedIDOffset))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(SeedUserBeforeCreatedID, resp.Field(servicedef.PropName).StringValue())
}

func (s *LiveSuite) TestUpdateUser() {
	payload := s.payload(fixtures.UpdateExistingUser)
	resp, err := s.client.Put(servicedef.UserPath(UpdatedUserID), payload)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(payload.GetString(servicedef.PropEmail), resp.Field(servicedef.PropEmail).StringValue())
}

func (s *LiveSuite) TestDeleteUser() {
	resp, err := s.client.Delete(servicedef.UserPath(DeletedUserID))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
}
