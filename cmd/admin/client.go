package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// apiClient is a thin HTTP client for the backend. It performs the full OTP
// flow itself: the verification code is surfaced in the request response
// because delivery is simulated, so the CLI can log in unattended.
type apiClient struct {
	addr   string
	http   *http.Client
	bearer string
}

func newAPIClient(addr string) *apiClient {
	return &apiClient{
		addr: addr,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) do(method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.addr+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// login creates a session and verifies the given mobile number.
func (c *apiClient) login(mobile string) error {
	var sess struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodGet, "/session", nil, &sess); err != nil {
		return err
	}
	c.bearer = sess.Token

	var otp struct {
		Sent bool `json:"sent"`
		Code int  `json:"code"`
	}
	if err := c.do(http.MethodPost, "/auth/otp/request", map[string]string{"mobile": mobile}, &otp); err != nil {
		return err
	}
	if !otp.Sent {
		return fmt.Errorf("mobile number %q rejected", mobile)
	}
	return c.do(http.MethodPost, "/auth/otp/verify", map[string]string{"code": fmt.Sprintf("%d", otp.Code)}, nil)
}

// download fetches a raw (non-JSON) resource.
func (c *apiClient) download(path string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.addr+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
