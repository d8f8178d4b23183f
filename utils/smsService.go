package utils

import (
	"botapi/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

var smsClient = resty.New().SetTimeout(10 * time.Second)

// SendOTPToMobile delivers a code through the configured SMS gateway.
// With no gateway configured the code is logged instead (dev mode).
func SendOTPToMobile(mobile, otp string) error {
	if config.AppConfig.SMSApiURL == "" {
		log.Printf("[SMS] gateway not configured, OTP for %s: %s", mobile, otp)
		return nil
	}

	resp, err := smsClient.R().
		SetHeader("Authorization", config.AppConfig.SMSApiKey).
		SetQueryParams(map[string]string{
			"sender_id": config.AppConfig.SMSSender,
			"numbers":   mobile,
			"message":   fmt.Sprintf("Your Tradebot OTP is %s. Valid for 5 minutes.", otp),
		}).
		Get(config.AppConfig.SMSApiURL)
	if err != nil {
		log.Printf("Error while sending OTP to %s: %v", mobile, err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode())
	}

	log.Println("OTP sent successfully to", mobile)
	return nil
}
