package database

// GetSetting returns the stored value for key. Missing keys and read
// failures both report false; failures are not fatal for a settings store.
func (d *Database) GetSetting(key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(d.ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

func (d *Database) SetSetting(key, value string) error {
	_, err := d.DB.ExecContext(d.ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

func (d *Database) DeleteSetting(key string) error {
	_, err := d.DB.ExecContext(d.ctx, "DELETE FROM settings WHERE key = ?", key)
	return wrapSettingErr("delete", key, err)
}
